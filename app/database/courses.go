package database

import (
	"database/sql"

	"campus-erp/app/models"
)

// GetAllCourses returns every course.
func GetAllCourses(db *sql.DB) ([]models.CourseDetails, error) {
	rows, err := db.Query(`SELECT course_id, course_name, department, duration_years, total_semesters
		FROM course_details ORDER BY course_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]models.CourseDetails, 0)
	for rows.Next() {
		var cd models.CourseDetails
		if err := rows.Scan(&cd.CourseID, &cd.CourseName, &cd.Department, &cd.DurationYears, &cd.TotalSemesters); err != nil {
			continue
		}
		courses = append(courses, cd)
	}
	return courses, rows.Err()
}

// GetCourseByID returns one course or sql.ErrNoRows.
func GetCourseByID(db *sql.DB, courseID string) (models.CourseDetails, error) {
	var cd models.CourseDetails
	err := db.QueryRow(`SELECT course_id, course_name, department, duration_years, total_semesters
		FROM course_details WHERE course_id = $1`, courseID).Scan(
		&cd.CourseID, &cd.CourseName, &cd.Department, &cd.DurationYears, &cd.TotalSemesters)
	return cd, err
}

// GetSubjectsByCourse returns every subject of one course. Branch,
// specialization and semester filtering happens in the handler over the
// fetched set.
func GetSubjectsByCourse(db *sql.DB, courseID string) ([]models.Subject, error) {
	rows, err := db.Query(`SELECT course_id, subject_code, subject_name, branch, specialization, semester, credits, faculty
		FROM subjects WHERE course_id = $1 ORDER BY subject_code`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.CourseID, &s.SubjectCode, &s.SubjectName, &s.Branch, &s.Specialization, &s.Semester, &s.Credits, &s.Faculty); err != nil {
			continue
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}
