package subjects

import (
	"database/sql"
	"strings"

	"campus-erp/app/database"
	"campus-erp/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetSubjectsAPI returns the subjects of a course, optionally narrowed
// by branch, specialization and semester. Branch and specialization
// match case-insensitively; the semester comparison normalizes both
// sides to strings so "3" and 3 describe the same term.
func GetSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	courseID := c.Query("courseId")
	if courseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "courseId required"})
	}
	branch := strings.TrimSpace(c.Query("branch"))
	specialization := strings.TrimSpace(c.Query("specialization"))
	semester := strings.TrimSpace(c.Query("semester"))

	subjects, err := database.GetSubjectsByCourse(db, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error querying subjects")
	}

	filtered := make([]models.Subject, 0, len(subjects))
	for _, s := range subjects {
		if branch != "" && !strings.EqualFold(s.Branch, branch) {
			continue
		}
		if specialization != "" && !strings.EqualFold(s.Specialization, specialization) {
			continue
		}
		if semester != "" && !s.Semester.Equal(models.Semester(semester)) {
			continue
		}
		filtered = append(filtered, s)
	}
	return c.JSON(filtered)
}
