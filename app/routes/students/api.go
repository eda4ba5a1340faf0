package students

import (
	"database/sql"
	"log"
	"strings"

	"campus-erp/app/database"
	"campus-erp/app/models"
	"campus-erp/app/services"
	"campus-erp/app/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ListStudentsAPI returns students filtered by courseId, branch,
// semester and section. A value of "all" (or absence) skips that filter;
// section matches case-insensitively. Filtering happens over the full
// fetched set.
func ListStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	courseID := c.Query("courseId")
	branch := c.Query("branch")
	semester := c.Query("semester")
	section := strings.TrimSpace(c.Query("section"))

	filtered := make([]models.Student, 0, len(students))
	for _, s := range students {
		if courseID != "" && courseID != "all" && s.CourseID != courseID {
			continue
		}
		if branch != "" && branch != "all" && s.Branch != branch {
			continue
		}
		if semester != "" && semester != "all" && !s.CurrentSem.Equal(models.Semester(semester)) {
			continue
		}
		if section != "" && !strings.EqualFold(s.Section, section) {
			continue
		}
		filtered = append(filtered, s)
	}
	return c.JSON(filtered)
}

// GetStudentsAPI returns every student.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return c.JSON(students)
}

// CreateStudentAPI registers a student and auto-assigns the next free
// room in the default hostel.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB, defaultHostelID string) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "StudentID and Name are required"})
	}

	log.Printf("[ADD-STUDENT] Registering %s (%s)", student.StudentID, student.Name)
	if err := database.UpsertStudent(db, &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add student")
	}

	// Room allocation is a scan-max-increment over current assignments.
	// Two concurrent registrations can read the same max and hand out
	// the same room; the storage layer does nothing to prevent it.
	existing, err := database.GetAssignmentsByHostel(db, defaultHostelID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign hostel room")
	}
	assignment := services.AllocateRoom(defaultHostelID, student, existing)
	if err := database.InsertAssignment(db, &assignment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign hostel room")
	}
	log.Printf("[ADD-STUDENT] Hostel assigned: %s room %s", assignment.HostelID, assignment.RoomNo)

	return c.JSON(fiber.Map{
		"student":          student,
		"hostelAssignment": assignment,
	})
}

// UpdateStudentAPI replaces a student record (put semantics: the body is
// stored as-is under the path ID).
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	student.StudentID = id

	log.Printf("[UPDATE-STUDENT] Updating %s", id)
	if err := database.UpsertStudent(db, &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	return c.JSON(student)
}

// DeleteStudentAPI removes a student record.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	log.Printf("[DELETE-STUDENT] Deleting %s", id)
	if err := database.DeleteStudent(db, id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return c.JSON(fiber.Map{"success": true})
}

// UploadPhotoAPI stores a student photo in the object store and returns
// its public URL.
func UploadPhotoAPI(c *fiber.Ctx, db *sql.DB, store *storage.Client) error {
	studentID := c.Params("studentId")

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded."})
	}
	if store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Photo storage is not configured."})
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Upload failed.")
	}
	defer src.Close()

	url, err := store.UploadPhoto(studentID+".jpg", "image/jpeg", src)
	if err != nil {
		log.Printf("[UPLOAD-PHOTO] Object store error for %s: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Upload failed.")
	}

	if err := database.UpdateStudentPhotoURL(db, studentID, url); err != nil {
		log.Printf("[UPLOAD-PHOTO] Failed to record photo URL for %s: %v", studentID, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
