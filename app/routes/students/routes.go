package students

import (
	"database/sql"

	"campus-erp/app/storage"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes sets up the student management routes.
func SetupStudentsRoutes(app *fiber.App, db *sql.DB, store *storage.Client, defaultHostelID string) {
	app.Get("/api/students", func(c *fiber.Ctx) error {
		return ListStudentsAPI(c, db)
	})

	app.Get("/students", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, db)
	})

	app.Post("/students", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, db, defaultHostelID)
	})

	app.Put("/students/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, db)
	})

	app.Delete("/students/:id", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, db)
	})

	app.Post("/upload-photo/:studentId", func(c *fiber.Ctx) error {
		return UploadPhotoAPI(c, db, store)
	})
}
