package main

import (
	"flag"
	"fmt"
	"log"

	"campus-erp/app/config"
	"campus-erp/app/database"
	"campus-erp/app/models"
	"campus-erp/app/services"

	"github.com/joho/godotenv"
)

// Seeds one student record and assigns a hostel room, handy when
// bootstrapping a fresh database.
func main() {
	id := flag.String("id", "", "student ID (required)")
	name := flag.String("name", "", "student name (required)")
	courseID := flag.String("course", "", "course ID")
	sem := flag.String("sem", "1", "current semester")
	flag.Parse()

	if *id == "" || *name == "" {
		log.Fatal("-id and -name are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	student := models.Student{
		StudentID:  *id,
		Name:       *name,
		CourseID:   *courseID,
		CurrentSem: models.Semester(*sem),
	}
	if err := database.UpsertStudent(db, &student); err != nil {
		log.Fatal("Error creating student:", err)
	}

	existing, err := database.GetAssignmentsByHostel(db, cfg.DefaultHostelID)
	if err != nil {
		log.Fatal("Error reading hostel assignments:", err)
	}
	assignment := services.AllocateRoom(cfg.DefaultHostelID, student, existing)
	if err := database.InsertAssignment(db, &assignment); err != nil {
		log.Fatal("Error assigning room:", err)
	}

	fmt.Printf("Student created: %s (%s), hostel %s room %s\n",
		student.Name, student.StudentID, assignment.HostelID, assignment.RoomNo)
}
