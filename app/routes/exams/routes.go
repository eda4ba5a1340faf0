package exams

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupExamsRoutes sets up the exam timetable and result routes.
func SetupExamsRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/exams/upcoming", func(c *fiber.Ctx) error {
		return GetUpcomingExamsAPI(c, db)
	})

	app.Get("/api/exams/admit-card/:studentId", func(c *fiber.Ctx) error {
		return GetAdmitCardAPI(c, db)
	})

	app.Get("/api/exams/results/:studentId", func(c *fiber.Ctx) error {
		return GetExamResultsAPI(c, db)
	})
}
