package admin

import (
	"database/sql"
	"errors"

	"campus-erp/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetAdminAPI returns one admin record.
func GetAdminAPI(c *fiber.Ctx, db *sql.DB) error {
	adminID := c.Params("adminId")

	a, err := database.GetAdminByID(db, adminID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Admin not found"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying admin")
	}
	return c.JSON(a)
}
