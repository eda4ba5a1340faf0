package courses

import (
	"database/sql"
	"errors"

	"campus-erp/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetCoursesAPI returns every course.
func GetCoursesAPI(c *fiber.Ctx, db *sql.DB) error {
	list, err := database.GetAllCourses(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying courses")
	}
	return c.JSON(list)
}

// GetCourseAPI returns one course.
func GetCourseAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Params("courseId")

	cd, err := database.GetCourseByID(db, courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying course")
	}
	return c.JSON(cd)
}
