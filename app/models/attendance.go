package models

// AttendanceEvent is one appended attendance row for a student. Status is
// free text; only a case-insensitive "present" counts as attended. Events
// missing SubjectCode or Status are ignored by aggregation.
type AttendanceEvent struct {
	StudentID   string `json:"StudentID" validate:"required"`
	SubjectCode string `json:"SubjectCode" validate:"required"`
	SubjectName string `json:"SubjectName,omitempty"`
	Faculty     string `json:"Faculty,omitempty"`
	Date        string `json:"Date,omitempty"`
	Status      string `json:"Status" validate:"required"`
}
