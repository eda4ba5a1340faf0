package hostel

import (
	"database/sql"
	"errors"
	"log"

	"campus-erp/app/database"
	"campus-erp/app/models"
	"campus-erp/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetAssignedHostelAPI returns a student's room assignment merged with
// the hostel's metadata. Missing metadata fields fall back to "-" so the
// response shape stays stable.
func GetAssignedHostelAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	assignment, err := database.GetHostelAssignment(db, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No hostel assigned"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying hostel assignment")
	}

	meta, err := database.GetHostelByID(db, assignment.HostelID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying hostel")
	}

	return c.JSON(fiber.Map{
		"HostelID":    assignment.HostelID,
		"HostelName":  dash(meta.HostelName),
		"RoomNo":      dash(assignment.RoomNo),
		"Floor":       dash(firstNonEmpty(assignment.Floor, meta.Floor)),
		"RoomType":    dash(firstNonEmpty(assignment.RoomType, meta.RoomType)),
		"WardenName":  dash(meta.WardenName),
		"WardenPhone": dash(meta.WardenPhone),
		"MonthlyFee":  dash(meta.MonthlyFee),
		"CheckInDate": dash(assignment.CheckInDate),
	})
}

// GetHostelFeeAPI returns the student's hostel fee item list. A student
// with no ledger record gets 404 with an empty list rather than a bare
// error, so clients can render an empty table.
func GetHostelFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	ledger, err := database.GetHostelFeeLedger(db, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"StudentID": studentID, "Fees": []models.FeeItem{}})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying hostel fees")
	}
	return c.JSON(ledger)
}

type payRequest struct {
	StudentID string `json:"studentId"`
	ItemName  string `json:"itemName"`
}

// PayHostelFeeAPI marks one named fee item Paid. The item list is read,
// rewritten in memory and stored back whole; two simultaneous payments
// against the same student can lose one of the updates.
func PayHostelFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req payRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.StudentID == "" || req.ItemName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "studentId and itemName are required"})
	}

	ledger, err := database.GetHostelFeeLedger(db, req.StudentID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fee record not found"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying hostel fees")
	}

	updated, matched := services.PayLedgerItem(ledger.Fees, req.ItemName)
	if !matched {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fee item not found"})
	}

	if err := database.UpdateHostelFeeItems(db, req.StudentID, updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fee record not found"})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	log.Printf("[HOSTEL-FEE] %s paid %q", req.StudentID, req.ItemName)
	return c.JSON(fiber.Map{"success": true, "Fees": updated})
}

// GetComplaintsAPI lists a student's hostel complaints.
func GetComplaintsAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	complaints, err := database.GetComplaintsByStudent(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying complaints")
	}
	return c.JSON(complaints)
}

// CreateComplaintAPI registers a hostel complaint. Complaints start out
// Pending and get a generated ID when the client sends none.
func CreateComplaintAPI(c *fiber.Ctx, db *sql.DB) error {
	var comp models.HostelComplaint
	if err := c.BodyParser(&comp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if comp.StudentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "StudentID is required"})
	}
	if comp.ComplaintID == "" {
		comp.ComplaintID = uuid.New().String()
	}
	if comp.Status == "" {
		comp.Status = "Pending"
	}

	if err := database.InsertComplaint(db, &comp); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register complaint")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "complaint": comp})
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
