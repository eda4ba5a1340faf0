package faculty

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupFacultyRoutes sets up the faculty profile routes.
func SetupFacultyRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/faculty/:facultyId", func(c *fiber.Ctx) error {
		return GetFacultyAPI(c, db)
	})

	app.Put("/api/faculty/:facultyId", func(c *fiber.Ctx) error {
		return UpdateFacultyProfileAPI(c, db)
	})
}
