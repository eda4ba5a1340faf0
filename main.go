package main

import (
	"log"

	"campus-erp/app/config"
	"campus-erp/app/database"
	"campus-erp/app/routes/admin"
	"campus-erp/app/routes/attendance"
	"campus-erp/app/routes/auth"
	"campus-erp/app/routes/circulars"
	"campus-erp/app/routes/courses"
	"campus-erp/app/routes/exams"
	"campus-erp/app/routes/faculty"
	"campus-erp/app/routes/fees"
	"campus-erp/app/routes/hostel"
	"campus-erp/app/routes/students"
	"campus-erp/app/routes/subjects"
	"campus-erp/app/services"
	"campus-erp/app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

// apiErrorHandler renders every error as a JSON envelope. The service is
// API-only; there are no HTML error pages.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store, err := storage.NewFromEnv()
	if err != nil {
		log.Fatal("Failed to initialize photo storage:", err)
	}
	if store == nil {
		log.Println("Photo storage not configured, uploads disabled")
	}

	// Background scheduler for the nightly overdue fee report
	services.StartScheduler(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(auth.IdentifyMiddleware(cfg.JWTSecret))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app, db, cfg.JWTSecret)
	students.SetupStudentsRoutes(app, db, store, cfg.DefaultHostelID)
	faculty.SetupFacultyRoutes(app, db)
	admin.SetupAdminRoutes(app, db)
	courses.SetupCoursesRoutes(app, db)
	subjects.SetupSubjectsRoutes(app, db)
	fees.SetupFeesRoutes(app, db)
	attendance.SetupAttendanceRoutes(app, db)
	hostel.SetupHostelRoutes(app, db)
	circulars.SetupCircularsRoutes(app, db)
	exams.SetupExamsRoutes(app, db)

	// Catch-all 404 (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}
