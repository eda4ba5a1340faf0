package attendance

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes sets up the attendance routes.
func SetupAttendanceRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/attendance", func(c *fiber.Ctx) error {
		return GetAttendanceAPI(c, db)
	})

	app.Get("/api/attendance/summary", func(c *fiber.Ctx) error {
		return GetAttendanceSummaryAPI(c, db)
	})

	app.Get("/api/attendance-overall/:studentId", func(c *fiber.Ctx) error {
		return GetOverallAttendanceAPI(c, db)
	})

	app.Post("/api/attendance", func(c *fiber.Ctx) error {
		return MarkAttendanceAPI(c, db)
	})
}
