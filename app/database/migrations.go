package database

import (
	"database/sql"
	"log"
)

// RunMigrations bootstraps the schema. Every statement is idempotent so
// the runner is safe to execute on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			student_id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			course_id TEXT NOT NULL DEFAULT '',
			branch TEXT NOT NULL DEFAULT '',
			specialization TEXT NOT NULL DEFAULT '',
			current_sem TEXT NOT NULL DEFAULT '',
			section TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			dob TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			photo_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS faculty (
			faculty_id TEXT PRIMARY KEY,
			department TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			official_email TEXT NOT NULL DEFAULT '',
			personal_email TEXT NOT NULL DEFAULT '',
			phone_no TEXT NOT NULL DEFAULT '',
			designation TEXT NOT NULL DEFAULT '',
			qualification TEXT NOT NULL DEFAULT '',
			specialization TEXT NOT NULL DEFAULT '',
			joining_date TEXT NOT NULL DEFAULT '',
			dob TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			photo_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			admin_id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS course_details (
			course_id TEXT PRIMARY KEY,
			course_name TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			duration_years INT NOT NULL DEFAULT 0,
			total_semesters INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id BIGSERIAL PRIMARY KEY,
			course_id TEXT NOT NULL,
			subject_code TEXT NOT NULL,
			subject_name TEXT NOT NULL DEFAULT '',
			branch TEXT NOT NULL DEFAULT '',
			specialization TEXT NOT NULL DEFAULT '',
			semester TEXT NOT NULL DEFAULT '',
			credits NUMERIC NOT NULL DEFAULT 0,
			faculty TEXT NOT NULL DEFAULT '',
			UNIQUE (course_id, subject_code)
		)`,
		`CREATE TABLE IF NOT EXISTS fee_structure (
			course_id TEXT NOT NULL,
			sem TEXT NOT NULL,
			tution_fee NUMERIC NOT NULL DEFAULT 0,
			other_fee NUMERIC NOT NULL DEFAULT 0,
			exam_fee NUMERIC NOT NULL DEFAULT 0,
			total_fee NUMERIC NOT NULL DEFAULT 0,
			due_date TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (course_id, sem)
		)`,
		`CREATE TABLE IF NOT EXISTS fees_paid (
			student_id TEXT NOT NULL,
			sem TEXT NOT NULL,
			paid_amount NUMERIC NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Pending',
			payment_date TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (student_id, sem)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id BIGSERIAL PRIMARY KEY,
			student_id TEXT NOT NULL,
			subject_code TEXT NOT NULL DEFAULT '',
			subject_name TEXT NOT NULL DEFAULT '',
			faculty TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_student ON attendance (student_id)`,
		`CREATE TABLE IF NOT EXISTS hostels (
			hostel_id TEXT PRIMARY KEY,
			hostel_name TEXT NOT NULL DEFAULT '',
			warden_name TEXT NOT NULL DEFAULT '',
			warden_phone TEXT NOT NULL DEFAULT '',
			monthly_fee TEXT NOT NULL DEFAULT '',
			floor TEXT NOT NULL DEFAULT '',
			room_type TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS hostel_assignments (
			student_id TEXT PRIMARY KEY,
			hostel_id TEXT NOT NULL,
			room_no TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			check_in_date TEXT NOT NULL DEFAULT '',
			floor TEXT NOT NULL DEFAULT '',
			room_type TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_hostel ON hostel_assignments (hostel_id)`,
		`CREATE TABLE IF NOT EXISTS hostel_fees (
			student_id TEXT PRIMARY KEY,
			fees JSONB NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS hostel_complaints (
			complaint_id TEXT PRIMARY KEY,
			student_id TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Open',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS circulars (
			circular_id TEXT PRIMARY KEY,
			course_id TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			issued_by TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id BIGSERIAL PRIMARY KEY,
			course_id TEXT NOT NULL,
			semester TEXT NOT NULL DEFAULT '',
			subject_code TEXT NOT NULL DEFAULT '',
			subject_name TEXT NOT NULL DEFAULT '',
			exam_date TEXT NOT NULL DEFAULT '',
			session TEXT NOT NULL DEFAULT '',
			venue TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS exam_results (
			id BIGSERIAL PRIMARY KEY,
			student_id TEXT NOT NULL,
			semester TEXT NOT NULL DEFAULT '',
			subject_code TEXT NOT NULL DEFAULT '',
			subject_name TEXT NOT NULL DEFAULT '',
			grade TEXT NOT NULL DEFAULT '',
			credits NUMERIC NOT NULL DEFAULT 0
		)`,
		// New students are placed in the default hostel; make sure it exists.
		`INSERT INTO hostels (hostel_id, hostel_name)
			VALUES ('H001', 'Main Hostel')
			ON CONFLICT (hostel_id) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
