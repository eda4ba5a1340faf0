package services

import (
	"reflect"
	"testing"

	"campus-erp/app/models"
)

func TestReconcileFeesOrdersBySemester(t *testing.T) {
	schedule := []models.FeeScheduleEntry{
		{Sem: "3", TotalFee: 30000},
		{Sem: "1", TotalFee: 10000},
		{Sem: "2", TotalFee: 20000},
	}
	rows, _ := ReconcileFees(schedule, nil)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows got %d", len(rows))
	}
	for i, want := range []string{"1", "2", "3"} {
		if rows[i].Semester.String() != want {
			t.Fatalf("row %d: expected sem %s got %s", i, want, rows[i].Semester)
		}
	}
}

func TestReconcileFeesDefaultsWithoutLedgerRow(t *testing.T) {
	schedule := []models.FeeScheduleEntry{{Sem: "1", TotalFee: 50000}}
	rows, metrics := ReconcileFees(schedule, nil)
	row := rows[0]
	if row.PaidAmount != 0 || row.Remaining != 50000 || row.Status != "Pending" {
		t.Fatalf("unexpected defaults: %+v", row)
	}
	if metrics.Paid != 0 || metrics.Pending != 50000 || metrics.Total != 50000 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}

func TestReconcileFeesMatchesMixedSemesterTypes(t *testing.T) {
	// Schedule uses a plain string, ledger arrives padded; "3" and 3 are
	// the same semester after normalization.
	schedule := []models.FeeScheduleEntry{{Sem: "3", TotalFee: 45000}}
	ledger := []models.PaymentRecord{{Sem: " 3 ", PaidAmount: 45000, Status: "Paid", Mode: "UPI"}}
	rows, _ := ReconcileFees(schedule, ledger)
	if rows[0].PaidAmount != 45000 || rows[0].Status != "Paid" || rows[0].Mode != "UPI" {
		t.Fatalf("ledger row not matched: %+v", rows[0])
	}
}

func TestReconcileFeesClampsOverpayment(t *testing.T) {
	schedule := []models.FeeScheduleEntry{{Sem: "1", TotalFee: 10000}}
	ledger := []models.PaymentRecord{{Sem: "1", PaidAmount: 12000, Status: "Paid"}}
	rows, metrics := ReconcileFees(schedule, ledger)
	if rows[0].Remaining != 0 {
		t.Fatalf("remaining must never be negative, got %v", rows[0].Remaining)
	}
	if metrics.Pending != 0 {
		t.Fatalf("overpaid row must not contribute to pending, got %v", metrics.Pending)
	}
	if metrics.Paid != 12000 || metrics.Total != 10000 {
		t.Fatalf("paid and total sum unconditionally: %+v", metrics)
	}
}

func TestReconcileFeesIdempotent(t *testing.T) {
	schedule := []models.FeeScheduleEntry{
		{Sem: "2", TotalFee: 20000, TutionFee: 15000, OtherFee: 3000, ExamFee: 2000, DueDate: "2026-01-15"},
		{Sem: "1", TotalFee: 20000},
	}
	ledger := []models.PaymentRecord{{Sem: "1", PaidAmount: 5000, Status: "Pending"}}
	rows1, m1 := ReconcileFees(schedule, ledger)
	rows2, m2 := ReconcileFees(schedule, ledger)
	if !reflect.DeepEqual(rows1, rows2) || m1 != m2 {
		t.Fatalf("reconciliation is not idempotent")
	}
}

func TestReconcileFeesAggregateConsistency(t *testing.T) {
	schedule := []models.FeeScheduleEntry{
		{Sem: "1", TotalFee: 10000},
		{Sem: "2", TotalFee: 20000},
		{Sem: "3", TotalFee: 30000},
	}
	ledger := []models.PaymentRecord{
		{Sem: "1", PaidAmount: 10000, Status: "Paid"},
		{Sem: "2", PaidAmount: 7500, Status: "Pending"},
	}
	rows, metrics := ReconcileFees(schedule, ledger)
	var total, paid float64
	for _, r := range rows {
		total += r.Total
		paid += r.PaidAmount
	}
	if metrics.Total != total || metrics.Paid != paid {
		t.Fatalf("metrics diverge from row sums: %+v vs total=%v paid=%v", metrics, total, paid)
	}
	if metrics.Pending != 12500 {
		t.Fatalf("expected pending 12500 got %v", metrics.Pending)
	}
}

func TestPayLedgerItem(t *testing.T) {
	items := []models.FeeItem{
		{Item: "Rent", Status: "Pending"},
		{Item: "Mess", Status: "Paid"},
	}
	out, matched := PayLedgerItem(items, "Rent")
	if !matched {
		t.Fatalf("expected a match for Rent")
	}
	if len(out) != 2 {
		t.Fatalf("item list length changed: %d", len(out))
	}
	if out[0].Status != "Paid" || out[1].Status != "Paid" {
		t.Fatalf("unexpected statuses: %+v", out)
	}
	if items[0].Status != "Pending" {
		t.Fatalf("input slice was mutated")
	}
}

func TestPayLedgerItemNoMatch(t *testing.T) {
	items := []models.FeeItem{{Item: "Rent", Status: "Pending"}}
	out, matched := PayLedgerItem(items, "Laundry")
	if matched {
		t.Fatalf("unexpected match")
	}
	if !reflect.DeepEqual(out, items) {
		t.Fatalf("list changed without a match: %+v", out)
	}
}
