package database

import (
	"database/sql"

	"campus-erp/app/models"
)

// GetCircularsByCourse returns the circulars published to one course,
// newest first.
func GetCircularsByCourse(db *sql.DB, courseID string) ([]models.Circular, error) {
	rows, err := db.Query(`SELECT circular_id, course_id, title, body, issued_by, date
		FROM circulars WHERE course_id = $1 ORDER BY date DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	circulars := make([]models.Circular, 0)
	for rows.Next() {
		var c models.Circular
		if err := rows.Scan(&c.CircularID, &c.CourseID, &c.Title, &c.Body, &c.IssuedBy, &c.Date); err != nil {
			continue
		}
		circulars = append(circulars, c)
	}
	return circulars, rows.Err()
}

// InsertCircular publishes a circular.
func InsertCircular(db *sql.DB, c *models.Circular) error {
	_, err := db.Exec(`INSERT INTO circulars (circular_id, course_id, title, body, issued_by, date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.CircularID, c.CourseID, c.Title, c.Body, c.IssuedBy, c.Date)
	return err
}
