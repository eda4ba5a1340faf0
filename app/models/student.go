package models

// Student is a student master record. JSON field names match the
// attribute names the SPA already expects.
type Student struct {
	StudentID      string   `json:"StudentID" validate:"required"`
	Name           string   `json:"Name" validate:"required"`
	CourseID       string   `json:"CourseID"`
	Branch         string   `json:"Branch,omitempty"`
	Specialization string   `json:"Specialization,omitempty"`
	CurrentSem     Semester `json:"CurrentSem,omitempty"`
	Section        string   `json:"Section,omitempty"`
	StudentPhoneNo string   `json:"StudentPhoneNo,omitempty"`
	Email          string   `json:"Email,omitempty" validate:"omitempty,email"`
	DOB            string   `json:"DOB,omitempty"`
	Address        string   `json:"Address,omitempty"`
	PhotoURL       string   `json:"PhotoURL,omitempty"`
}
