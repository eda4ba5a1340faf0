package database

import (
	"database/sql"

	"campus-erp/app/models"
)

const studentColumns = `student_id, name, course_id, branch, specialization,
	current_sem, section, phone, email, dob, address, photo_url`

func scanStudent(row interface{ Scan(...interface{}) error }) (models.Student, error) {
	var s models.Student
	err := row.Scan(&s.StudentID, &s.Name, &s.CourseID, &s.Branch, &s.Specialization,
		&s.CurrentSem, &s.Section, &s.StudentPhoneNo, &s.Email, &s.DOB, &s.Address, &s.PhotoURL)
	return s, err
}

// GetAllStudents returns every student record.
func GetAllStudents(db *sql.DB) ([]models.Student, error) {
	rows, err := db.Query(`SELECT ` + studentColumns + ` FROM students ORDER BY student_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			continue
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID returns one student or sql.ErrNoRows.
func GetStudentByID(db *sql.DB, studentID string) (models.Student, error) {
	row := db.QueryRow(`SELECT `+studentColumns+` FROM students WHERE student_id = $1`, studentID)
	return scanStudent(row)
}

// UpsertStudent writes the full student record, replacing any existing
// row with the same ID (put semantics).
func UpsertStudent(db *sql.DB, s *models.Student) error {
	_, err := db.Exec(`INSERT INTO students (`+studentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (student_id) DO UPDATE SET
			name = EXCLUDED.name, course_id = EXCLUDED.course_id,
			branch = EXCLUDED.branch, specialization = EXCLUDED.specialization,
			current_sem = EXCLUDED.current_sem, section = EXCLUDED.section,
			phone = EXCLUDED.phone, email = EXCLUDED.email, dob = EXCLUDED.dob,
			address = EXCLUDED.address, photo_url = EXCLUDED.photo_url`,
		s.StudentID, s.Name, s.CourseID, s.Branch, s.Specialization,
		s.CurrentSem, s.Section, s.StudentPhoneNo, s.Email, s.DOB, s.Address, s.PhotoURL)
	return err
}

// DeleteStudent removes a student record.
func DeleteStudent(db *sql.DB, studentID string) error {
	_, err := db.Exec(`DELETE FROM students WHERE student_id = $1`, studentID)
	return err
}

// UpdateStudentPhotoURL records the uploaded photo location.
func UpdateStudentPhotoURL(db *sql.DB, studentID, url string) error {
	_, err := db.Exec(`UPDATE students SET photo_url = $1 WHERE student_id = $2`, url, studentID)
	return err
}
