package database

import (
	"database/sql"

	"campus-erp/app/models"
)

// GetUpcomingExams returns the scheduled exams for a course semester.
func GetUpcomingExams(db *sql.DB, courseID string, semester models.Semester) ([]models.Exam, error) {
	rows, err := db.Query(`SELECT course_id, semester, subject_code, subject_name, exam_date, session, venue
		FROM exams WHERE course_id = $1 AND semester = $2 ORDER BY exam_date`, courseID, semester)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exams := make([]models.Exam, 0)
	for rows.Next() {
		var e models.Exam
		if err := rows.Scan(&e.CourseID, &e.Semester, &e.SubjectCode, &e.SubjectName, &e.ExamDate, &e.Session, &e.Venue); err != nil {
			continue
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// GetExamResults returns a student's graded results, optionally filtered
// to one semester (empty semester means all).
func GetExamResults(db *sql.DB, studentID string, semester models.Semester) ([]models.ExamResult, error) {
	query := `SELECT student_id, semester, subject_code, subject_name, grade, credits
		FROM exam_results WHERE student_id = $1`
	args := []interface{}{studentID}
	if semester != "" {
		query += ` AND semester = $2`
		args = append(args, semester)
	}
	query += ` ORDER BY semester, subject_code`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.ExamResult, 0)
	for rows.Next() {
		var r models.ExamResult
		if err := rows.Scan(&r.StudentID, &r.Semester, &r.SubjectCode, &r.SubjectName, &r.Grade, &r.Credits); err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
