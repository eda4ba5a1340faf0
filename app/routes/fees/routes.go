package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up the fee structure and ledger routes.
func SetupFeesRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/feestructure", func(c *fiber.Ctx) error {
		return GetFeeStructureAPI(c, db)
	})

	app.Get("/api/feepaid", func(c *fiber.Ctx) error {
		return GetFeesPaidAPI(c, db)
	})

	app.Get("/api/fees/summary", func(c *fiber.Ctx) error {
		return GetFeeSummaryAPI(c, db)
	})
}
