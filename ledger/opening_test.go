package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return DateOnly(t)
}

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

func saleEntry(id, date string, debit int64) Entry {
	return Entry{ID: id, Kind: KindSaleItem, Date: day(date), Debit: decimal.NewFromInt(debit), Credit: decimal.Zero, Visible: true}
}

func paymentEntry(id, date string, credit int64) Entry {
	return Entry{ID: id, Kind: KindPayment, Date: day(date), Debit: decimal.Zero, Credit: decimal.NewFromInt(credit), Visible: true}
}

// Scenario: base balance 1000, one pre-cutoff sale of 500 and one
// pre-cutoff payment of 200 give an opening balance of 1300.
func TestOpeningBalance_FoldsPreCutoffHistory(t *testing.T) {
	entries := []Entry{
		saleEntry("s1", "2024-01-05", 500),
		paymentEntry("p1", "2024-01-08", 200),
		saleEntry("s2", "2024-02-01", 999), // inside the window, must not count
	}
	got := OpeningBalance(entries, dayPtr("2024-01-15"), decimal.NewFromInt(1000))
	if !got.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("opening = %s, want 1300", got)
	}
}

func TestOpeningBalance_NilCutoffIsBaseOnly(t *testing.T) {
	entries := []Entry{saleEntry("s1", "2024-01-05", 500)}
	got := OpeningBalance(entries, nil, decimal.NewFromInt(777))
	if !got.Equal(decimal.NewFromInt(777)) {
		t.Fatalf("opening = %s, want 777 (no folding without a cutoff)", got)
	}
}

func TestOpeningBalance_CutoffDayItselfIsExcluded(t *testing.T) {
	entries := []Entry{saleEntry("s1", "2024-01-15", 500)}
	got := OpeningBalance(entries, dayPtr("2024-01-15"), decimal.Zero)
	if !got.IsZero() {
		t.Fatalf("entry dated at the cutoff must not fold into opening, got %s", got)
	}
}

func TestOpeningBalance_Idempotent(t *testing.T) {
	entries := []Entry{
		saleEntry("s1", "2024-01-05", 500),
		paymentEntry("p1", "2024-01-08", 200),
	}
	first := OpeningBalance(entries, dayPtr("2024-01-15"), decimal.NewFromInt(1000))
	second := OpeningBalance(entries, dayPtr("2024-01-15"), decimal.NewFromInt(1000))
	if !first.Equal(second) {
		t.Fatalf("repeated calls differ: %s vs %s", first, second)
	}
}
