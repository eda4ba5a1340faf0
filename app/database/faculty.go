package database

import (
	"database/sql"

	"campus-erp/app/models"
)

const facultyColumns = `faculty_id, department, name, official_email, personal_email,
	phone_no, designation, qualification, specialization, joining_date, dob, gender, address, photo_url`

func scanFaculty(row interface{ Scan(...interface{}) error }) (models.Faculty, error) {
	var f models.Faculty
	err := row.Scan(&f.FacultyID, &f.Department, &f.Name, &f.OfficialEmail, &f.PersonalEmail,
		&f.PhoneNo, &f.Designation, &f.Qualification, &f.Specialization,
		&f.JoiningDate, &f.DOB, &f.Gender, &f.Address, &f.PhotoURL)
	return f, err
}

// GetFacultyByID returns one faculty record or sql.ErrNoRows.
func GetFacultyByID(db *sql.DB, facultyID string) (models.Faculty, error) {
	row := db.QueryRow(`SELECT `+facultyColumns+` FROM faculty WHERE faculty_id = $1`, facultyID)
	return scanFaculty(row)
}

// UpdateFacultyProfile applies an allow-listed profile update. Only the
// fixed set of columns below can ever be touched; the statement is built
// from this list, never from request content. Returns sql.ErrNoRows when
// the faculty record does not exist and the updated record otherwise.
func UpdateFacultyProfile(db *sql.DB, facultyID string, upd *models.FacultyProfileUpdate) (models.Faculty, error) {
	type setter struct {
		column string
		value  *string
	}
	setters := []setter{
		{"name", upd.Name},
		{"official_email", upd.OfficialEmail},
		{"personal_email", upd.PersonalEmail},
		{"phone_no", upd.PhoneNo},
		{"designation", upd.Designation},
		{"qualification", upd.Qualification},
		{"specialization", upd.Specialization},
		{"joining_date", upd.JoiningDate},
		{"dob", upd.DOB},
		{"gender", upd.Gender},
		{"address", upd.Address},
		{"photo_url", upd.PhotoURL},
	}

	query := `UPDATE faculty SET `
	args := make([]interface{}, 0, len(setters)+1)
	for _, s := range setters {
		if s.value == nil {
			continue
		}
		if len(args) > 0 {
			query += ", "
		}
		args = append(args, *s.value)
		query += s.column + ` = $` + itoa(len(args))
	}
	if len(args) == 0 {
		return models.Faculty{}, ErrNoFields
	}
	args = append(args, facultyID)
	query += ` WHERE faculty_id = $` + itoa(len(args))

	res, err := db.Exec(query, args...)
	if err != nil {
		return models.Faculty{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Faculty{}, sql.ErrNoRows
	}
	return GetFacultyByID(db, facultyID)
}
