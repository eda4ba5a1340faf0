package database

import (
	"database/sql"

	"campus-erp/app/models"
)

// GetAttendanceEvents returns the raw attendance rows for one student in
// insertion order. Empty result is an empty slice.
func GetAttendanceEvents(db *sql.DB, studentID string) ([]models.AttendanceEvent, error) {
	rows, err := db.Query(`SELECT student_id, subject_code, subject_name, faculty, date, status
		FROM attendance WHERE student_id = $1 ORDER BY id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.AttendanceEvent, 0)
	for rows.Next() {
		var ev models.AttendanceEvent
		if err := rows.Scan(&ev.StudentID, &ev.SubjectCode, &ev.SubjectName, &ev.Faculty, &ev.Date, &ev.Status); err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// InsertAttendanceEvent appends one attendance row.
func InsertAttendanceEvent(db *sql.DB, ev *models.AttendanceEvent) error {
	_, err := db.Exec(`INSERT INTO attendance (student_id, subject_code, subject_name, faculty, date, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		ev.StudentID, ev.SubjectCode, ev.SubjectName, ev.Faculty, ev.Date, ev.Status)
	return err
}
