package ledger

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func customerSources() Sources {
	return Sources{
		Sales: []SaleDoc{
			{ID: "IV:1", Date: "2024-01-05", InvoiceNumber: "INV-001", Lines: []SaleLine{
				{Description: "Cement bag", Qty: 10, UnitPrice: 50},
			}},
			{ID: "IV:2", Date: "2024-02-10", InvoiceNumber: "INV-002", Lines: []SaleLine{
				{Description: "Bricks", Qty: 100, UnitPrice: 8},
			}},
		},
		Payments: []PaymentDoc{
			{ID: "CP:1", Date: "2024-01-08", Amount: 200, Notes: "advance"},
			{ID: "CP:2", Date: "2024-02-10", Amount: 300, Notes: "part payment"},
		},
	}
}

func TestBuildLedger_FullPipeline(t *testing.T) {
	account := Account{ID: "42", Name: "Acme Traders", BaseBalance: decimal.NewFromInt(1000)}
	res, err := BuildLedger(customerSources(), account, Query{
		FromDate: dayPtr("2024-02-01"),
		ToDate:   dayPtr("2024-02-28"),
	})
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	// Pre-window history: base 1000 + sale 500 - payment 200.
	if !res.OpeningBalance.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("opening = %s, want 1300", res.OpeningBalance)
	}
	// In-window: sale 800 then payment 300 on the same day.
	if !res.ClosingBalance.Equal(decimal.NewFromInt(1800)) {
		t.Fatalf("closing = %s, want 1800", res.ClosingBalance)
	}
	if len(res.Entries) != 3 {
		t.Fatalf("expected opening row + 2 entries, got %d", len(res.Entries))
	}
	if res.Entries[0].Kind != KindOpeningRow {
		t.Fatalf("first row must be the opening row, got %s", res.Entries[0].Kind)
	}
	if !res.Entries[0].RunningBalance.Equal(res.OpeningBalance) {
		t.Fatalf("opening row balance = %s, want %s", res.Entries[0].RunningBalance, res.OpeningBalance)
	}
	if !res.Entries[0].Debit.IsZero() || !res.Entries[0].Credit.IsZero() {
		t.Fatalf("opening row must carry no debit/credit")
	}
	if !res.Entries[1].RunningBalance.Equal(decimal.NewFromInt(2100)) ||
		!res.Entries[2].RunningBalance.Equal(decimal.NewFromInt(1800)) {
		t.Fatalf("running balances = %s, %s; want 2100, 1800",
			res.Entries[1].RunningBalance, res.Entries[2].RunningBalance)
	}
}

// Scenario: empty sources with base balance 500 render a well-formed empty
// ledger, not an error.
func TestBuildLedger_EmptySources(t *testing.T) {
	account := Account{ID: "7", BaseBalance: decimal.NewFromInt(500)}
	res, err := BuildLedger(Sources{}, account, Query{})
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	if !res.OpeningBalance.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("opening = %s, want 500", res.OpeningBalance)
	}
	if !res.ClosingBalance.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("closing = %s, want 500", res.ClosingBalance)
	}
	if len(res.Entries) != 0 {
		t.Fatalf("expected zero rendered rows, got %d", len(res.Entries))
	}
}

func TestBuildLedger_RejectsInvertedRange(t *testing.T) {
	account := Account{ID: "7"}
	_, err := BuildLedger(Sources{}, account, Query{
		FromDate: dayPtr("2024-02-28"),
		ToDate:   dayPtr("2024-02-01"),
	})
	if err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestBuildLedger_OpeningIndependentOfToDate(t *testing.T) {
	account := Account{ID: "42", BaseBalance: decimal.NewFromInt(1000)}
	from := dayPtr("2024-02-01")
	for _, to := range []string{"2024-02-02", "2024-02-28", "2024-12-31"} {
		res, err := BuildLedger(customerSources(), account, Query{FromDate: from, ToDate: dayPtr(to)})
		if err != nil {
			t.Fatalf("BuildLedger(to=%s): %v", to, err)
		}
		if !res.OpeningBalance.Equal(decimal.NewFromInt(1300)) {
			t.Fatalf("toDate %s changed the opening balance: %s", to, res.OpeningBalance)
		}
	}
}

func TestBuildLedger_GroupingCompleteness(t *testing.T) {
	res, err := BuildLedger(customerSources(), Account{ID: "42"}, Query{})
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	subtotals := decimal.Zero
	saleDebits := decimal.Zero
	for _, e := range res.Entries {
		if e.IsGroupTerminal {
			subtotals = subtotals.Add(e.GroupSubtotal)
		}
		if e.Kind == KindSaleItem {
			saleDebits = saleDebits.Add(e.Debit)
		}
	}
	if !subtotals.Equal(saleDebits) {
		t.Fatalf("sum of subtotals %s != sum of sale debits %s", subtotals, saleDebits)
	}
}

func TestBuildLedger_FilterNonInterference(t *testing.T) {
	account := Account{ID: "42", BaseBalance: decimal.NewFromInt(1000)}
	base, err := BuildLedger(customerSources(), account, Query{})
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	filtered, err := BuildLedger(customerSources(), account, Query{Search: "part payment"})
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	baseByID := map[string]decimal.Decimal{}
	for _, e := range base.Entries {
		baseByID[e.ID] = e.RunningBalance
	}
	for _, e := range filtered.Entries {
		if !e.Visible {
			continue
		}
		if want, ok := baseByID[e.ID]; !ok || !e.RunningBalance.Equal(want) {
			t.Fatalf("filter changed balance of %s: %s (unfiltered %s)", e.ID, e.RunningBalance, want)
		}
	}
	if !filtered.ClosingBalance.Equal(base.ClosingBalance) {
		t.Fatalf("filter changed the closing balance: %s vs %s", filtered.ClosingBalance, base.ClosingBalance)
	}
}

func TestBuildLedger_Idempotent(t *testing.T) {
	account := Account{ID: "42", BaseBalance: decimal.NewFromInt(1000)}
	q := Query{FromDate: dayPtr("2024-01-01"), ToDate: dayPtr("2024-12-31"), Search: "cement"}
	first, err := BuildLedger(customerSources(), account, q)
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	second, err := BuildLedger(customerSources(), account, q)
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different output")
	}
}

func TestBuildLedger_UndatedEntriesExcludedButReported(t *testing.T) {
	src := customerSources()
	src.Payments = append(src.Payments, PaymentDoc{ID: "CP:bad", Amount: 9999})
	account := Account{ID: "42", BaseBalance: decimal.NewFromInt(1000)}

	res, err := BuildLedger(src, account, Query{})
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	for _, e := range res.Entries {
		if e.ID == "CP:bad" {
			t.Fatalf("undated entry leaked into the statement")
		}
	}
	if len(res.Diagnostics.Undated) != 1 || res.Diagnostics.Undated[0].SourceID != "CP:bad" {
		t.Fatalf("undated record not reported: %+v", res.Diagnostics)
	}
	// The 9999 credit must not have bent the closing balance:
	// 1000 + 500 - 200 + 800 - 300 = 1800.
	if !res.ClosingBalance.Equal(decimal.NewFromInt(1800)) {
		t.Fatalf("closing = %s, want 1800", res.ClosingBalance)
	}
}
