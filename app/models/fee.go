package models

// FeeScheduleEntry is one row of a course's fee structure for a single
// semester. Reference data maintained by administration, never mutated by
// the reconciliation path. TotalFee is copied as stored; it is not
// guaranteed to equal the sum of its components.
type FeeScheduleEntry struct {
	CourseID  string   `json:"CourseID"`
	Sem       Semester `json:"Sem"`
	TutionFee Money    `json:"TutionFee"`
	OtherFee  Money    `json:"OtherFee"`
	ExamFee   Money    `json:"ExamFee"`
	TotalFee  Money    `json:"TotalFee"`
	DueDate   string   `json:"DueDate,omitempty"`
}

// PaymentRecord is one row of a student's payment ledger: at most one
// record per semester. Status is stored verbatim ("Paid" or "Pending"),
// never derived.
type PaymentRecord struct {
	StudentID   string   `json:"StudentID"`
	Sem         Semester `json:"Sem"`
	PaidAmount  Money    `json:"PaidAmount"`
	Status      string   `json:"Status"`
	PaymentDate string   `json:"PaymentDate,omitempty"`
	Mode        string   `json:"Mode,omitempty"`
}

// FeeItem is one entry of a nested fee-item list (the hostel fee ledger).
// Paying an item rewrites its Status in place.
type FeeItem struct {
	Item    string `json:"Item"`
	Amount  Money  `json:"Amount"`
	DueDate string `json:"DueDate,omitempty"`
	Status  string `json:"Status"`
}

// HostelFeeLedger is a student's hostel fee record with its item list.
type HostelFeeLedger struct {
	StudentID string    `json:"StudentID"`
	Fees      []FeeItem `json:"Fees"`
}
