package services

import (
	"strconv"
	"strings"

	"campus-erp/app/models"
)

// NextRoomNumber computes the next sequential room number for a hostel
// from its existing assignments: highest numeric room number plus one,
// starting at "1" when the hostel is empty. Room numbers that do not
// parse are treated as 0, never as an error. The scan assumes a single
// writer; two concurrent allocations for the same hostel can hand the
// same room to two students.
func NextRoomNumber(assignments []models.HostelAssignment) string {
	last := 0
	for _, a := range assignments {
		n, err := strconv.Atoi(strings.TrimSpace(a.RoomNo))
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}
	return strconv.Itoa(last + 1)
}

// AllocateRoom builds the assignment that places student in the next free
// room of the given hostel.
func AllocateRoom(hostelID string, student models.Student, existing []models.HostelAssignment) models.HostelAssignment {
	return models.HostelAssignment{
		StudentID:      student.StudentID,
		HostelID:       hostelID,
		RoomNo:         NextRoomNumber(existing),
		StudentPhoneNo: student.StudentPhoneNo,
	}
}
