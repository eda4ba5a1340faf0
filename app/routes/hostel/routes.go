package hostel

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupHostelRoutes sets up the hostel assignment, fee and complaint
// routes.
func SetupHostelRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/hostel-assigned/:studentId", func(c *fiber.Ctx) error {
		return GetAssignedHostelAPI(c, db)
	})

	app.Get("/api/hostel-fee/:studentId", func(c *fiber.Ctx) error {
		return GetHostelFeeAPI(c, db)
	})

	app.Post("/api/hostel-fee/pay", func(c *fiber.Ctx) error {
		return PayHostelFeeAPI(c, db)
	})

	app.Get("/api/hostel-complaint/:studentId", func(c *fiber.Ctx) error {
		return GetComplaintsAPI(c, db)
	})

	app.Post("/api/hostel-complaint", func(c *fiber.Ctx) error {
		return CreateComplaintAPI(c, db)
	})
}
