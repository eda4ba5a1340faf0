package models

// Circular is a notice published to the students of one course.
type Circular struct {
	CircularID string `json:"CircularID"`
	CourseID   string `json:"CourseID" validate:"required"`
	Title      string `json:"Title" validate:"required"`
	Body       string `json:"Body,omitempty"`
	IssuedBy   string `json:"IssuedBy,omitempty"`
	Date       string `json:"Date,omitempty"`
}
