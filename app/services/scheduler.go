package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 9:05 PM (21:05)
			if now.Hour() == 21 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [21:05]...")

				if err := ReportOverdueFees(db); err != nil {
					log.Printf("Error running overdue fee report: %v", err)
				}
			}
		}
	}()
}
