package auth

import (
	"database/sql"

	"campus-erp/app/database"

	"github.com/gofiber/fiber/v2"
)

// LoginAPI resolves a student ID to its record. There is no credential:
// a known ID logs in, an unknown one gets 401. A session token is issued
// for the SPA to carry, but nothing requires it.
func LoginAPI(c *fiber.Ctx, db *sql.DB, jwtSecret string) error {
	type LoginRequest struct {
		UserID string `json:"userId"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "UserID required"})
	}

	student, err := database.GetStudentByID(db, req.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	token, err := GenerateToken(jwtSecret, student.StudentID, "student")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"user":        fiber.Map{"type": "student", "id": student.StudentID},
		"studentData": student,
		"token":       token,
		"success":     true,
	})
}
