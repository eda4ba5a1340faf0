package circulars

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupCircularsRoutes sets up the circular routes.
func SetupCircularsRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/circulars/:courseId", func(c *fiber.Ctx) error {
		return GetCircularsAPI(c, db)
	})

	app.Post("/api/circulars", func(c *fiber.Ctx) error {
		return CreateCircularAPI(c, db)
	})
}
