package admin

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin lookup routes.
func SetupAdminRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/admin/:adminId", func(c *fiber.Ctx) error {
		return GetAdminAPI(c, db)
	})
}
