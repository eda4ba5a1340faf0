package faculty

import (
	"database/sql"
	"errors"

	"campus-erp/app/database"
	"campus-erp/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetFacultyAPI returns one faculty record.
func GetFacultyAPI(c *fiber.Ctx, db *sql.DB) error {
	facultyID := c.Params("facultyId")

	f, err := database.GetFacultyByID(db, facultyID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty not found"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying faculty")
	}
	return c.JSON(f)
}

// UpdateFacultyProfileAPI updates a faculty member's own profile. The
// update struct is the allow-list: any field outside it is dropped at
// decode time and can never reach a column.
func UpdateFacultyProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	facultyID := c.Params("facultyId")

	var upd models.FacultyProfileUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile fields"})
	}

	updated, err := database.UpdateFacultyProfile(db, facultyID, &upd)
	if errors.Is(err, database.ErrNoFields) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No valid fields to update"})
	}
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty not found"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}
	return c.JSON(fiber.Map{"success": true, "faculty": updated})
}
