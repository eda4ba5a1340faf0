package models

// Exam is one scheduled examination for a course semester.
type Exam struct {
	CourseID    string   `json:"CourseID"`
	Semester    Semester `json:"Semester"`
	SubjectCode string   `json:"SubjectCode"`
	SubjectName string   `json:"SubjectName,omitempty"`
	ExamDate    string   `json:"ExamDate,omitempty"`
	Session     string   `json:"Session,omitempty"`
	Venue       string   `json:"Venue,omitempty"`
}

// ExamResult is a student's graded result for one subject.
type ExamResult struct {
	StudentID   string   `json:"StudentID"`
	Semester    Semester `json:"Semester"`
	SubjectCode string   `json:"SubjectCode"`
	SubjectName string   `json:"SubjectName,omitempty"`
	Grade       string   `json:"Grade"`
	Credits     Money    `json:"Credits,omitempty"`
}
