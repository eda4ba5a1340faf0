package services

import (
	"sort"

	"campus-erp/app/models"
)

// FeeRow is one reconciled semester: the schedule amounts joined with
// whatever the payment ledger shows for that semester.
type FeeRow struct {
	Semester    models.Semester `json:"semester"`
	Tuition     float64         `json:"tuition"`
	Other       float64         `json:"other"`
	Exam        float64         `json:"exam"`
	Total       float64         `json:"total"`
	Due         string          `json:"due"`
	PaidAmount  float64         `json:"paidAmount"`
	Remaining   float64         `json:"remaining"`
	Status      string          `json:"status"`
	PaymentDate string          `json:"paymentDate,omitempty"`
	Mode        string          `json:"mode"`
}

// FeeMetrics aggregates the reconciled rows.
type FeeMetrics struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Total   float64 `json:"total"`
}

// ReconcileFees joins a course fee schedule with a student's payment
// ledger by semester and derives paid/pending figures. Rows come back
// sorted ascending by numeric semester, one per schedule entry. A
// schedule entry without a ledger match is reported as unpaid with
// status "Pending". Remaining is clamped at zero, so an overpaid
// semester never shows a negative balance.
func ReconcileFees(schedule []models.FeeScheduleEntry, ledger []models.PaymentRecord) ([]FeeRow, FeeMetrics) {
	rows := make([]FeeRow, 0, len(schedule))
	for _, entry := range schedule {
		row := FeeRow{
			Semester: entry.Sem,
			Tuition:  float64(entry.TutionFee),
			Other:    float64(entry.OtherFee),
			Exam:     float64(entry.ExamFee),
			Total:    float64(entry.TotalFee),
			Due:      entry.DueDate,
			Status:   "Pending",
			Mode:     "-",
		}
		if row.Due == "" {
			row.Due = "-"
		}
		for _, paid := range ledger {
			if !paid.Sem.Equal(entry.Sem) {
				continue
			}
			row.PaidAmount = float64(paid.PaidAmount)
			if paid.Status != "" {
				row.Status = paid.Status
			}
			row.PaymentDate = paid.PaymentDate
			if paid.Mode != "" {
				row.Mode = paid.Mode
			}
			break
		}
		row.Remaining = row.Total - row.PaidAmount
		if row.Remaining < 0 {
			row.Remaining = 0
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Semester.Num() < rows[j].Semester.Num()
	})

	var metrics FeeMetrics
	for _, row := range rows {
		metrics.Total += row.Total
		metrics.Paid += row.PaidAmount
		// Only rows that are not fully paid contribute to pending. The
		// clamp above already zeroes remaining for overpaid rows; the
		// guard stays because paid can exceed total.
		if row.Total > row.PaidAmount {
			metrics.Pending += row.Remaining
		}
	}
	return rows, metrics
}

// PayLedgerItem returns a copy of items with every entry named name
// rewritten to status "Paid", and reports whether any entry matched.
// Matching is exact. Callers persist the returned list wholesale; there
// is no concurrency control, so two concurrent pays against the same
// ledger can lose one of the updates.
func PayLedgerItem(items []models.FeeItem, name string) ([]models.FeeItem, bool) {
	out := make([]models.FeeItem, len(items))
	copy(out, items)
	matched := false
	for i := range out {
		if out[i].Item == name {
			out[i].Status = "Paid"
			matched = true
		}
	}
	return out, matched
}
