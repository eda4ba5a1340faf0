package database

import (
	"database/sql"
	"encoding/json"

	"campus-erp/app/models"
)

// GetHostelAssignment returns a student's room assignment or sql.ErrNoRows.
func GetHostelAssignment(db *sql.DB, studentID string) (models.HostelAssignment, error) {
	var a models.HostelAssignment
	err := db.QueryRow(`SELECT student_id, hostel_id, room_no, phone, check_in_date, floor, room_type
		FROM hostel_assignments WHERE student_id = $1`, studentID).Scan(
		&a.StudentID, &a.HostelID, &a.RoomNo, &a.StudentPhoneNo, &a.CheckInDate, &a.Floor, &a.RoomType)
	return a, err
}

// GetAssignmentsByHostel returns every assignment in one hostel.
func GetAssignmentsByHostel(db *sql.DB, hostelID string) ([]models.HostelAssignment, error) {
	rows, err := db.Query(`SELECT student_id, hostel_id, room_no, phone, check_in_date, floor, room_type
		FROM hostel_assignments WHERE hostel_id = $1`, hostelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]models.HostelAssignment, 0)
	for rows.Next() {
		var a models.HostelAssignment
		if err := rows.Scan(&a.StudentID, &a.HostelID, &a.RoomNo, &a.StudentPhoneNo, &a.CheckInDate, &a.Floor, &a.RoomType); err != nil {
			continue
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// InsertAssignment writes a new room assignment, replacing any existing
// one for the student.
func InsertAssignment(db *sql.DB, a *models.HostelAssignment) error {
	_, err := db.Exec(`INSERT INTO hostel_assignments (student_id, hostel_id, room_no, phone, check_in_date, floor, room_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (student_id) DO UPDATE SET
			hostel_id = EXCLUDED.hostel_id, room_no = EXCLUDED.room_no,
			phone = EXCLUDED.phone, check_in_date = EXCLUDED.check_in_date,
			floor = EXCLUDED.floor, room_type = EXCLUDED.room_type`,
		a.StudentID, a.HostelID, a.RoomNo, a.StudentPhoneNo, a.CheckInDate, a.Floor, a.RoomType)
	return err
}

// GetHostelByID returns hostel metadata or sql.ErrNoRows.
func GetHostelByID(db *sql.DB, hostelID string) (models.Hostel, error) {
	var h models.Hostel
	err := db.QueryRow(`SELECT hostel_id, hostel_name, warden_name, warden_phone, monthly_fee, floor, room_type
		FROM hostels WHERE hostel_id = $1`, hostelID).Scan(
		&h.HostelID, &h.HostelName, &h.WardenName, &h.WardenPhone, &h.MonthlyFee, &h.Floor, &h.RoomType)
	return h, err
}

// GetHostelFeeLedger returns a student's hostel fee record with its
// nested item list, or sql.ErrNoRows.
func GetHostelFeeLedger(db *sql.DB, studentID string) (models.HostelFeeLedger, error) {
	ledger := models.HostelFeeLedger{StudentID: studentID}
	var raw []byte
	err := db.QueryRow(`SELECT fees FROM hostel_fees WHERE student_id = $1`, studentID).Scan(&raw)
	if err != nil {
		return ledger, err
	}
	if err := json.Unmarshal(raw, &ledger.Fees); err != nil {
		ledger.Fees = []models.FeeItem{}
	}
	return ledger, nil
}

// UpdateHostelFeeItems persists the full item list back under the
// student's ledger record. Plain overwrite of the whole list, exactly as
// the pay flow read it; concurrent writers can overwrite each other.
func UpdateHostelFeeItems(db *sql.DB, studentID string, items []models.FeeItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	res, err := db.Exec(`UPDATE hostel_fees SET fees = $1 WHERE student_id = $2`, raw, studentID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// GetComplaintsByStudent returns a student's hostel complaints, newest
// first.
func GetComplaintsByStudent(db *sql.DB, studentID string) ([]models.HostelComplaint, error) {
	rows, err := db.Query(`SELECT complaint_id, student_id, category, description, status, created_at::text
		FROM hostel_complaints WHERE student_id = $1 ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := make([]models.HostelComplaint, 0)
	for rows.Next() {
		var comp models.HostelComplaint
		if err := rows.Scan(&comp.ComplaintID, &comp.StudentID, &comp.Category, &comp.Description, &comp.Status, &comp.CreatedAt); err != nil {
			continue
		}
		complaints = append(complaints, comp)
	}
	return complaints, rows.Err()
}

// InsertComplaint registers a new hostel complaint.
func InsertComplaint(db *sql.DB, comp *models.HostelComplaint) error {
	_, err := db.Exec(`INSERT INTO hostel_complaints (complaint_id, student_id, category, description, status)
		VALUES ($1, $2, $3, $4, $5)`,
		comp.ComplaintID, comp.StudentID, comp.Category, comp.Description, comp.Status)
	return err
}
