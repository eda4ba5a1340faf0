package services

import (
	"database/sql"
	"log"
	"time"

	"campus-erp/app/database"
	"campus-erp/app/models"
)

// ReportOverdueFees reconciles every student's ledger against their
// course fee schedule and logs the ones carrying a past-due pending
// balance. Reporting only; nothing is mutated.
func ReportOverdueFees(db *sql.DB) error {
	log.Println("Starting overdue fee report...")

	students, err := database.ListStudentIDsWithLedger(db)
	if err != nil {
		return err
	}

	today := time.Now()
	cache := map[string][]models.FeeScheduleEntry{}
	count := 0
	for _, student := range students {
		if student.CourseID == "" {
			continue
		}
		entries, ok := cache[student.CourseID]
		if !ok {
			entries, err = database.GetFeeSchedule(db, student.CourseID)
			if err != nil {
				log.Printf("Failed to fetch fee schedule for %s: %v", student.CourseID, err)
				continue
			}
			cache[student.CourseID] = entries
		}

		ledger, err := database.GetPaymentLedger(db, student.StudentID)
		if err != nil {
			log.Printf("Failed to fetch ledger for %s: %v", student.StudentID, err)
			continue
		}

		rows, _ := ReconcileFees(entries, ledger)
		for _, row := range rows {
			if row.Remaining <= 0 {
				continue
			}
			due, err := time.Parse("2006-01-02", row.Due)
			if err != nil || !due.Before(today) {
				continue
			}
			count++
			log.Printf("Overdue: student %s (%s) sem %s owes %.2f, due %s",
				student.StudentID, student.Name, row.Semester, row.Remaining, row.Due)
		}
	}

	log.Printf("Overdue fee report completed. %d overdue semesters found.", count)
	return nil
}
