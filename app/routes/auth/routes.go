package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the auth routes.
func SetupAuthRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	app.Post("/api/auth/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, db, jwtSecret)
	})
}
