package services

import (
	"testing"

	"campus-erp/app/models"
)

func TestAggregateAttendanceGroupsBySubject(t *testing.T) {
	events := []models.AttendanceEvent{
		{SubjectCode: "CS1", Status: "Present"},
		{SubjectCode: "CS1", Status: "Absent"},
		{SubjectCode: "CS2", Status: "Present"},
	}
	report := AggregateAttendance(events)
	if len(report.Subjects) != 2 {
		t.Fatalf("expected 2 subjects got %d", len(report.Subjects))
	}
	cs1, cs2 := report.Subjects[0], report.Subjects[1]
	if cs1.Code != "CS1" || cs1.TotalClasses != 2 || cs1.Attended != 1 || cs1.Percentage != 50 {
		t.Fatalf("CS1 aggregate wrong: %+v", cs1)
	}
	if cs2.Code != "CS2" || cs2.TotalClasses != 1 || cs2.Attended != 1 || cs2.Percentage != 100 {
		t.Fatalf("CS2 aggregate wrong: %+v", cs2)
	}
	if report.Overall == nil || *report.Overall != 67 {
		t.Fatalf("expected overall 67 got %v", report.Overall)
	}
}

func TestAggregateAttendanceSkipsMalformedEvents(t *testing.T) {
	events := []models.AttendanceEvent{
		{SubjectCode: "CS1", Status: "Present"},
		{SubjectCode: "", Status: "Present"},
		{SubjectCode: "CS1", Status: ""},
		{SubjectCode: "CS2", Status: "absent"},
	}
	report := AggregateAttendance(events)
	if report.TotalClasses != 2 {
		t.Fatalf("malformed events must be excluded, counted %d", report.TotalClasses)
	}
	if report.Attended != 1 {
		t.Fatalf("expected 1 attended got %d", report.Attended)
	}
}

func TestAggregateAttendancePresentMatchIsCaseInsensitive(t *testing.T) {
	events := []models.AttendanceEvent{
		{SubjectCode: "CS1", Status: "PRESENT"},
		{SubjectCode: "CS1", Status: "present"},
		{SubjectCode: "CS1", Status: "Late"},
	}
	report := AggregateAttendance(events)
	if report.Subjects[0].Attended != 2 || report.Subjects[0].TotalClasses != 3 {
		t.Fatalf("case-insensitive present match broken: %+v", report.Subjects[0])
	}
}

func TestAggregateAttendanceDisplayFields(t *testing.T) {
	events := []models.AttendanceEvent{
		{SubjectCode: "CS1", SubjectName: "Data Structures", Faculty: "Dr. Rao", Status: "Present"},
		{SubjectCode: "CS1", SubjectName: "DS (renamed)", Faculty: "Dr. Iyer", Status: "Absent"},
	}
	report := AggregateAttendance(events)
	subj := report.Subjects[0]
	if subj.Name != "Data Structures" {
		t.Fatalf("subject name must keep first-seen value, got %q", subj.Name)
	}
	if subj.Faculty != "Dr. Iyer" {
		t.Fatalf("faculty must follow most recent event, got %q", subj.Faculty)
	}
}

func TestAggregateAttendanceFirstSeenOrder(t *testing.T) {
	events := []models.AttendanceEvent{
		{SubjectCode: "MA2", Status: "Present"},
		{SubjectCode: "CS1", Status: "Present"},
		{SubjectCode: "MA2", Status: "Absent"},
	}
	report := AggregateAttendance(events)
	if report.Subjects[0].Code != "MA2" || report.Subjects[1].Code != "CS1" {
		t.Fatalf("subjects out of first-seen order: %+v", report.Subjects)
	}
}

func TestAggregateAttendanceEmptyInput(t *testing.T) {
	report := AggregateAttendance(nil)
	if report.Overall != nil {
		t.Fatalf("overall must be nil with no classes, got %v", *report.Overall)
	}
	if len(report.Subjects) != 0 || report.TotalClasses != 0 {
		t.Fatalf("empty input must yield empty report: %+v", report)
	}
}
