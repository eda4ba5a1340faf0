package services

import (
	"testing"

	"campus-erp/app/models"
)

func TestNextRoomNumber(t *testing.T) {
	cases := []struct {
		name  string
		rooms []string
		want  string
	}{
		{"sequential gap-free", []string{"1", "3", "2"}, "4"},
		{"empty hostel", nil, "1"},
		{"non-numeric ignored", []string{"X", "2"}, "3"},
		{"all non-numeric", []string{"X", "Y"}, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var assignments []models.HostelAssignment
			for _, r := range tc.rooms {
				assignments = append(assignments, models.HostelAssignment{RoomNo: r})
			}
			if got := NextRoomNumber(assignments); got != tc.want {
				t.Fatalf("rooms %v: expected %s got %s", tc.rooms, tc.want, got)
			}
		})
	}
}

func TestAllocateRoom(t *testing.T) {
	student := models.Student{StudentID: "S1001", StudentPhoneNo: "9900112233"}
	existing := []models.HostelAssignment{{RoomNo: "7"}}
	got := AllocateRoom("H001", student, existing)
	if got.StudentID != "S1001" || got.HostelID != "H001" || got.RoomNo != "8" {
		t.Fatalf("unexpected assignment: %+v", got)
	}
	if got.StudentPhoneNo != "9900112233" {
		t.Fatalf("phone not carried over: %+v", got)
	}
}
