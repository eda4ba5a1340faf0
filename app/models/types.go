package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Semester identifies an academic term. Imported records store it
// sometimes as a number and sometimes as a string, so the type normalizes
// everything to a string and compares semesters by their trimmed string
// form.
type Semester string

// UnmarshalJSON accepts both JSON numbers and strings.
func (s *Semester) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*s = ""
	case string:
		*s = Semester(v)
	case float64:
		*s = Semester(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		*s = Semester(fmt.Sprint(v))
	}
	return nil
}

// String returns the normalized string form.
func (s Semester) String() string { return string(s) }

// Num returns the semester as an integer for ordering. Non-numeric
// semesters sort as 0.
func (s Semester) Num() int {
	n, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil {
		return 0
	}
	return n
}

// Equal reports whether two semesters name the same term: "3" and 3
// arriving from different records must match.
func (s Semester) Equal(other Semester) bool {
	return strings.TrimSpace(string(s)) == strings.TrimSpace(string(other))
}

// Scan implements sql.Scanner.
func (s *Semester) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = ""
	case string:
		*s = Semester(v)
	case []byte:
		*s = Semester(v)
	case int64:
		*s = Semester(strconv.FormatInt(v, 10))
	case float64:
		*s = Semester(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		*s = Semester(fmt.Sprint(v))
	}
	return nil
}

// Value implements driver.Valuer.
func (s Semester) Value() (driver.Value, error) {
	return string(s), nil
}

// Money is an amount in whole currency units. Imported records carry
// amounts as numbers, numeric strings or junk; anything unparseable
// coerces to zero rather than failing the request.
type Money float64

// UnmarshalJSON accepts numbers, numeric strings and null; everything
// else becomes 0.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = 0
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*m = Money(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = Money(f)
	default:
		*m = 0
	}
	return nil
}

// Scan implements sql.Scanner with the same leniency as UnmarshalJSON.
func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = 0
	case float64:
		*m = Money(v)
	case int64:
		*m = Money(v)
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = Money(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = Money(f)
	default:
		*m = 0
	}
	return nil
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return float64(m), nil
}
