package database

import (
	"errors"
	"strconv"
)

// ErrNoFields is returned when an update request carries none of the
// permitted fields.
var ErrNoFields = errors.New("no valid fields to update")

func itoa(n int) string { return strconv.Itoa(n) }
