package subjects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupSubjectsRoutes sets up the subject catalogue routes.
func SetupSubjectsRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/subjects", func(c *fiber.Ctx) error {
		return GetSubjectsAPI(c, db)
	})
}
