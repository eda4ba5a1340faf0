package attendance

import (
	"database/sql"

	"campus-erp/app/database"
	"campus-erp/app/models"
	"campus-erp/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetAttendanceAPI returns the raw attendance events for a student.
func GetAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Query("studentId")
	if studentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "studentId required"})
	}

	events, err := database.GetAttendanceEvents(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying attendance")
	}
	return c.JSON(events)
}

// GetAttendanceSummaryAPI returns the per-subject aggregation plus the
// overall percentage for a student.
func GetAttendanceSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Query("studentId")
	if studentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "studentId required"})
	}

	events, err := database.GetAttendanceEvents(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying attendance")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    services.AggregateAttendance(events),
	})
}

// GetOverallAttendanceAPI returns only the overall percentage. The value
// is null when the student has no recorded classes.
func GetOverallAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "studentId required"})
	}

	events, err := database.GetAttendanceEvents(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying attendance")
	}
	report := services.AggregateAttendance(events)
	return c.JSON(fiber.Map{"overall": report.Overall})
}

// MarkAttendanceAPI appends one attendance event. Faculty-side tooling
// calls this after each class.
func MarkAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	var ev models.AttendanceEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "StudentID, SubjectCode and Status are required"})
	}

	if err := database.InsertAttendanceEvent(db, &ev); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record attendance")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "event": ev})
}
