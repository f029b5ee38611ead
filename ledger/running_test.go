package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

// Scenario: opening 1300, in-range sale of 800 then payment of 300 on the
// same day (sale arrives first) runs 2100 then 1800.
func TestComputeRunning_SameDayKeepsArrivalOrder(t *testing.T) {
	entries := []Entry{
		saleEntry("s1", "2024-02-10", 800),
		paymentEntry("p1", "2024-02-10", 300),
	}
	rows, closing := ComputeRunning(entries, decimal.NewFromInt(1300))
	if rows[0].ID != "s1" || rows[1].ID != "p1" {
		t.Fatalf("stable sort broke ties: %s then %s", rows[0].ID, rows[1].ID)
	}
	if !rows[0].RunningBalance.Equal(decimal.NewFromInt(2100)) {
		t.Fatalf("first running balance = %s, want 2100", rows[0].RunningBalance)
	}
	if !rows[1].RunningBalance.Equal(decimal.NewFromInt(1800)) {
		t.Fatalf("second running balance = %s, want 1800", rows[1].RunningBalance)
	}
	if !closing.Equal(decimal.NewFromInt(1800)) {
		t.Fatalf("closing = %s, want 1800", closing)
	}
}

func TestComputeRunning_SortsAscendingByDate(t *testing.T) {
	entries := []Entry{
		saleEntry("later", "2024-03-10", 100),
		saleEntry("earlier", "2024-03-01", 100),
	}
	rows, _ := ComputeRunning(entries, decimal.Zero)
	if rows[0].ID != "earlier" || rows[1].ID != "later" {
		t.Fatalf("entries not sorted: %s then %s", rows[0].ID, rows[1].ID)
	}
}

func TestComputeRunning_FoldInvariant(t *testing.T) {
	entries := []Entry{
		saleEntry("s1", "2024-01-02", 800),
		paymentEntry("p1", "2024-01-03", 300),
		saleEntry("s2", "2024-01-04", 150),
		paymentEntry("p2", "2024-01-05", 650),
	}
	opening := decimal.NewFromInt(1000)
	rows, _ := ComputeRunning(entries, opening)
	prev := opening
	for i, e := range rows {
		want := prev.Add(e.Debit).Sub(e.Credit)
		if !e.RunningBalance.Equal(want) {
			t.Fatalf("row %d: running = %s, want %s", i, e.RunningBalance, want)
		}
		prev = e.RunningBalance
	}
}

func TestComputeRunning_EmptySetClosesAtOpening(t *testing.T) {
	rows, closing := ComputeRunning(nil, decimal.NewFromInt(500))
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
	if !closing.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("closing = %s, want opening 500", closing)
	}
}
