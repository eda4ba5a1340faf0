package fees

import (
	"database/sql"
	"sort"

	"campus-erp/app/database"
	"campus-erp/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetFeeStructureAPI returns a course's fee schedule sorted ascending by
// semester number.
func GetFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Query("courseId")
	if courseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "courseId required"})
	}

	entries, err := database.GetFeeSchedule(db, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying fee structure")
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Sem.Num() < entries[j].Sem.Num() })
	return c.JSON(entries)
}

// GetFeesPaidAPI returns a student's payment ledger sorted ascending by
// semester number.
func GetFeesPaidAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Query("studentId")
	if studentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "studentId required"})
	}

	records, err := database.GetPaymentLedger(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying payment ledger")
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Sem.Num() < records[j].Sem.Num() })
	return c.JSON(records)
}

// GetFeeSummaryAPI reconciles the schedule and ledger server-side and
// returns the derived rows plus aggregate metrics, so every dashboard
// renders the same figures instead of re-deriving them.
func GetFeeSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Query("courseId")
	studentID := c.Query("studentId")
	if courseID == "" || studentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "courseId and studentId required"})
	}

	schedule, err := database.GetFeeSchedule(db, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying fee structure")
	}
	ledger, err := database.GetPaymentLedger(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying payment ledger")
	}

	rows, metrics := services.ReconcileFees(schedule, ledger)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"rows":    rows,
			"metrics": metrics,
		},
	})
}
