package services

import (
	"math"
	"strings"

	"campus-erp/app/models"
)

// SubjectAttendance is the aggregate for one subject code.
type SubjectAttendance struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	Faculty      string `json:"teacher"`
	TotalClasses int    `json:"totalClasses"`
	Attended     int    `json:"attended"`
	Percentage   int    `json:"percentage"`
}

// AttendanceReport is the full aggregation for one student. Overall is
// nil (JSON null) when no classes have been held at all; it is never a
// string sentinel.
type AttendanceReport struct {
	Subjects     []SubjectAttendance `json:"subjects"`
	TotalClasses int                 `json:"totalClasses"`
	Attended     int                 `json:"attended"`
	Overall      *int                `json:"overall"`
}

// AggregateAttendance groups a student's attendance events by subject
// code, in first-seen order. Events missing a subject code or a status
// are skipped. The subject name is fixed by the first event seen; the
// faculty display name follows the most recent event. Any status other
// than a case-insensitive "present" counts a class held but not
// attended.
func AggregateAttendance(events []models.AttendanceEvent) AttendanceReport {
	byCode := make(map[string]*SubjectAttendance)
	var order []string

	for _, ev := range events {
		if ev.SubjectCode == "" || ev.Status == "" {
			continue
		}
		subj, ok := byCode[ev.SubjectCode]
		if !ok {
			name := ev.SubjectName
			if name == "" {
				name = ev.SubjectCode
			}
			subj = &SubjectAttendance{Name: name, Code: ev.SubjectCode}
			byCode[ev.SubjectCode] = subj
			order = append(order, ev.SubjectCode)
		}
		subj.Faculty = ev.Faculty
		subj.TotalClasses++
		if strings.EqualFold(ev.Status, "present") {
			subj.Attended++
		}
	}

	report := AttendanceReport{Subjects: make([]SubjectAttendance, 0, len(order))}
	for _, code := range order {
		subj := byCode[code]
		subj.Percentage = roundPercent(subj.Attended, subj.TotalClasses)
		report.TotalClasses += subj.TotalClasses
		report.Attended += subj.Attended
		report.Subjects = append(report.Subjects, *subj)
	}
	if report.TotalClasses > 0 {
		overall := roundPercent(report.Attended, report.TotalClasses)
		report.Overall = &overall
	}
	return report
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
