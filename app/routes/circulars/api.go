package circulars

import (
	"database/sql"

	"campus-erp/app/database"
	"campus-erp/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetCircularsAPI lists the circulars published to one course.
func GetCircularsAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("courseId")

	list, err := database.GetCircularsByCourse(db, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying circulars")
	}
	return c.JSON(list)
}

// CreateCircularAPI publishes a circular to a course.
func CreateCircularAPI(c *fiber.Ctx, db *sql.DB) error {
	var circ models.Circular
	if err := c.BodyParser(&circ); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if circ.CourseID == "" || circ.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "CourseID and Title are required"})
	}
	if circ.CircularID == "" {
		circ.CircularID = uuid.New().String()
	}

	if err := database.InsertCircular(db, &circ); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to publish circular")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "circular": circ})
}
