package database

import (
	"database/sql"

	"campus-erp/app/models"
)

// GetFeeSchedule returns the fee structure rows for one course.
// Absence of rows is an empty slice, not an error.
func GetFeeSchedule(db *sql.DB, courseID string) ([]models.FeeScheduleEntry, error) {
	rows, err := db.Query(`SELECT course_id, sem, tution_fee, other_fee, exam_fee, total_fee, due_date
		FROM fee_structure WHERE course_id = $1 ORDER BY sem`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.FeeScheduleEntry, 0)
	for rows.Next() {
		var e models.FeeScheduleEntry
		if err := rows.Scan(&e.CourseID, &e.Sem, &e.TutionFee, &e.OtherFee, &e.ExamFee, &e.TotalFee, &e.DueDate); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetPaymentLedger returns a student's fee payment records.
func GetPaymentLedger(db *sql.DB, studentID string) ([]models.PaymentRecord, error) {
	rows, err := db.Query(`SELECT student_id, sem, paid_amount, status, payment_date, mode
		FROM fees_paid WHERE student_id = $1 ORDER BY sem`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.PaymentRecord, 0)
	for rows.Next() {
		var r models.PaymentRecord
		if err := rows.Scan(&r.StudentID, &r.Sem, &r.PaidAmount, &r.Status, &r.PaymentDate, &r.Mode); err != nil {
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListStudentIDsWithLedger returns the distinct students that have at
// least one payment record, with their course. Used by the overdue sweep.
func ListStudentIDsWithLedger(db *sql.DB) ([]models.Student, error) {
	rows, err := db.Query(`SELECT DISTINCT s.student_id, s.name, s.course_id
		FROM students s JOIN fees_paid fp ON fp.student_id = s.student_id
		ORDER BY s.student_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.StudentID, &s.Name, &s.CourseID); err != nil {
			continue
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
