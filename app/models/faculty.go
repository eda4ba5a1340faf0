package models

// Faculty is a faculty member record.
type Faculty struct {
	FacultyID      string `json:"FacultyID" validate:"required"`
	Department     string `json:"Department"`
	Name           string `json:"Name"`
	OfficialEmail  string `json:"OfficialEmail,omitempty" validate:"omitempty,email"`
	PersonalEmail  string `json:"PersonalEmail,omitempty" validate:"omitempty,email"`
	PhoneNo        string `json:"PhoneNo,omitempty"`
	Designation    string `json:"Designation,omitempty"`
	Qualification  string `json:"Qualification,omitempty"`
	Specialization string `json:"Specialization,omitempty"`
	JoiningDate    string `json:"JoiningDate,omitempty"`
	DOB            string `json:"DOB,omitempty"`
	Gender         string `json:"Gender,omitempty"`
	Address        string `json:"Address,omitempty"`
	PhotoURL       string `json:"PhotoURL,omitempty"`
}

// FacultyProfileUpdate carries the fields a faculty member may change on
// their own profile. It is the fixed allow-list: a request field outside
// this struct never reaches the storage layer.
type FacultyProfileUpdate struct {
	Name           *string `json:"Name,omitempty" validate:"omitempty,min=1"`
	OfficialEmail  *string `json:"OfficialEmail,omitempty" validate:"omitempty,email"`
	PersonalEmail  *string `json:"PersonalEmail,omitempty" validate:"omitempty,email"`
	PhoneNo        *string `json:"PhoneNo,omitempty"`
	Designation    *string `json:"Designation,omitempty"`
	Qualification  *string `json:"Qualification,omitempty"`
	Specialization *string `json:"Specialization,omitempty"`
	JoiningDate    *string `json:"JoiningDate,omitempty"`
	DOB            *string `json:"DOB,omitempty"`
	Gender         *string `json:"Gender,omitempty"`
	Address        *string `json:"Address,omitempty"`
	PhotoURL       *string `json:"PhotoURL,omitempty" validate:"omitempty,url"`
}
