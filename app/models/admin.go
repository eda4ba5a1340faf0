package models

// Admin is an administrative user record.
type Admin struct {
	AdminID string `json:"AdminID" validate:"required"`
	Name    string `json:"Name"`
	Role    string `json:"Role,omitempty"`
	Email   string `json:"Email,omitempty" validate:"omitempty,email"`
}
