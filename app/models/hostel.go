package models

// Hostel is hostel metadata keyed by hostel ID.
type Hostel struct {
	HostelID    string `json:"HostelID"`
	HostelName  string `json:"HostelName"`
	WardenName  string `json:"WardenName,omitempty"`
	WardenPhone string `json:"WardenPhone,omitempty"`
	MonthlyFee  string `json:"MonthlyFee,omitempty"`
	Floor       string `json:"Floor,omitempty"`
	RoomType    string `json:"RoomType,omitempty"`
}

// HostelAssignment links a student to a room. RoomNo is a numeric string;
// rooms are handed out sequentially per hostel.
type HostelAssignment struct {
	StudentID      string `json:"StudentID"`
	HostelID       string `json:"HostelID"`
	RoomNo         string `json:"RoomNo"`
	StudentPhoneNo string `json:"StudentPhoneNo,omitempty"`
	CheckInDate    string `json:"CheckInDate,omitempty"`
	Floor          string `json:"Floor,omitempty"`
	RoomType       string `json:"RoomType,omitempty"`
}

// HostelComplaint is a maintenance or service complaint raised by a
// hosteller.
type HostelComplaint struct {
	ComplaintID string `json:"ComplaintID"`
	StudentID   string `json:"StudentID" validate:"required"`
	Category    string `json:"Category,omitempty"`
	Description string `json:"Description,omitempty"`
	Status      string `json:"Status,omitempty"`
	CreatedAt   string `json:"CreatedAt,omitempty"`
}
