package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestApplyFilter_EmptyQueryShowsEverything(t *testing.T) {
	entries := []Entry{
		saleEntry("s1", "2024-01-02", 100),
		paymentEntry("p1", "2024-01-03", 50),
	}
	ApplyFilter(entries, "   ")
	for _, e := range entries {
		if !e.Visible {
			t.Fatalf("entry hidden with empty query: %+v", e)
		}
	}
}

func TestApplyFilter_MatchesParticularFolioAndNotes(t *testing.T) {
	entries := []Entry{
		{ID: "a", Kind: KindSaleItem, Date: day("2024-01-02"), Particular: "Cement Bag", Folio: "INV-001", Visible: true},
		{ID: "b", Kind: KindPayment, Date: day("2024-01-03"), Particular: "Payment Received", Folio: NoFolio, Notes: "paid via UPI", Visible: true},
	}
	cases := []struct {
		query       string
		wantVisible []string
	}{
		{"cement", []string{"a"}},
		{"inv-001", []string{"a"}},
		{"upi", []string{"b"}},
		{"zzz", nil},
	}
	for _, tc := range cases {
		ApplyFilter(entries, tc.query)
		var got []string
		for _, e := range entries {
			if e.Visible {
				got = append(got, e.ID)
			}
		}
		if len(got) != len(tc.wantVisible) {
			t.Fatalf("query %q: visible %v, want %v", tc.query, got, tc.wantVisible)
		}
		for i := range got {
			if got[i] != tc.wantVisible[i] {
				t.Fatalf("query %q: visible %v, want %v", tc.query, got, tc.wantVisible)
			}
		}
	}
}

// Scenario: a search matching only the payment's notes hides the sale rows
// but must not change any running balance or the invoice subtotal.
func TestApplyFilter_NeverTouchesBalancesOrSubtotals(t *testing.T) {
	entries := []Entry{
		folioSale("s1", "2024-01-02", "INV-001", 100),
		folioSale("s2", "2024-01-03", "INV-001", 150),
		{ID: "p1", Kind: KindPayment, Date: day("2024-01-04"), Particular: "Payment Received",
			Folio: NoFolio, Credit: decimal.NewFromInt(50), Debit: decimal.Zero, Notes: "remark-xyz", Visible: true},
	}
	rows, _ := ComputeRunning(entries, decimal.NewFromInt(1000))
	GroupInvoices(rows)

	unfiltered := make([]decimal.Decimal, len(rows))
	for i, e := range rows {
		unfiltered[i] = e.RunningBalance
	}

	ApplyFilter(rows, "remark-xyz")
	ResolveSubtotalRows(rows)

	if rows[0].Visible || rows[1].Visible {
		t.Fatalf("sale rows should be hidden")
	}
	if !rows[2].Visible {
		t.Fatalf("matching payment should be visible")
	}
	for i, e := range rows {
		if !e.RunningBalance.Equal(unfiltered[i]) {
			t.Fatalf("row %d running balance changed by filter: %s -> %s", i, unfiltered[i], e.RunningBalance)
		}
	}
	// Whole group hidden: subtotal suppressed but still worth 250 internally
	// when any member becomes visible again.
	ApplyFilter(rows, "")
	ResolveSubtotalRows(rows)
	if !rows[1].IsGroupTerminal || !rows[1].GroupSubtotal.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("subtotal not restored after clearing the filter: %+v", rows[1])
	}
}

func TestApplyFilter_OpeningRowAlwaysVisible(t *testing.T) {
	entries := []Entry{
		{ID: "opening:1", Kind: KindOpeningRow, Date: day("2024-01-01"), Particular: "Opening Balance", Folio: NoFolio, Visible: true},
		saleEntry("s1", "2024-01-02", 100),
	}
	ApplyFilter(entries, "no-match-at-all")
	if !entries[0].Visible {
		t.Fatalf("opening row must stay visible under any filter")
	}
	if entries[1].Visible {
		t.Fatalf("non-matching row should be hidden")
	}
}
