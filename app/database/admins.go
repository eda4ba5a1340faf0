package database

import (
	"database/sql"

	"campus-erp/app/models"
)

// GetAdminByID returns one admin record or sql.ErrNoRows.
func GetAdminByID(db *sql.DB, adminID string) (models.Admin, error) {
	var a models.Admin
	err := db.QueryRow(`SELECT admin_id, name, role, email FROM admins WHERE admin_id = $1`, adminID).
		Scan(&a.AdminID, &a.Name, &a.Role, &a.Email)
	return a, err
}
