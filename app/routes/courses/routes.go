package courses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupCoursesRoutes sets up the course catalogue routes.
func SetupCoursesRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/coursedetails", func(c *fiber.Ctx) error {
		return GetCoursesAPI(c, db)
	})

	app.Get("/coursedetails/:courseId", func(c *fiber.Ctx) error {
		return GetCourseAPI(c, db)
	})
}
