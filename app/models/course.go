package models

// CourseDetails describes a course offered by the university.
type CourseDetails struct {
	CourseID       string `json:"CourseID" validate:"required"`
	CourseName     string `json:"CourseName"`
	Department     string `json:"Department,omitempty"`
	DurationYears  int    `json:"DurationYears,omitempty"`
	TotalSemesters int    `json:"TotalSemesters,omitempty"`
}

// Subject is a subject taught within a course, optionally scoped to a
// branch, specialization and semester.
type Subject struct {
	CourseID       string   `json:"CourseID"`
	SubjectCode    string   `json:"SubjectCode"`
	SubjectName    string   `json:"SubjectName"`
	Branch         string   `json:"Branch,omitempty"`
	Specialization string   `json:"Specialization,omitempty"`
	Semester       Semester `json:"Semester,omitempty"`
	Credits        Money    `json:"Credits,omitempty"`
	Faculty        string   `json:"Faculty,omitempty"`
}
