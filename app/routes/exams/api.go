package exams

import (
	"database/sql"
	"errors"

	"campus-erp/app/database"
	"campus-erp/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetUpcomingExamsAPI returns the scheduled exams for a course semester.
func GetUpcomingExamsAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Query("courseId")
	semester := c.Query("semester")
	if courseID == "" || semester == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "courseId and semester required"})
	}

	list, err := database.GetUpcomingExams(db, courseID, models.Semester(semester))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying exams")
	}
	return c.JSON(list)
}

// GetAdmitCardAPI returns the student's details together with the exam
// timetable for their current semester, the two halves an admit card is
// rendered from.
func GetAdmitCardAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	student, err := database.GetStudentByID(db, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying student")
	}

	exams, err := database.GetUpcomingExams(db, student.CourseID, student.CurrentSem)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying exams")
	}
	return c.JSON(fiber.Map{
		"student": student,
		"exams":   exams,
	})
}

// GetExamResultsAPI returns a student's graded results, optionally
// filtered by semester.
func GetExamResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	semester := models.Semester(c.Query("semester"))

	results, err := database.GetExamResults(db, studentID, semester)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying results")
	}
	return c.JSON(results)
}
