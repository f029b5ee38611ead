// Package ledger rebuilds a chronological account statement from
// heterogeneous source records: normalize into uniform entries, fold the
// opening balance for everything before the window, fold the running
// balance inside it, attach invoice subtotals and a display-only search
// flag. The whole pipeline is pure and DB-free; callers fetch the records.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindSaleItem    Kind = "SaleItem"
	KindPayment     Kind = "Payment"
	KindPurchase    Kind = "Purchase"
	KindExpense     Kind = "Expense"
	KindTransferIn  Kind = "TransferIn"
	KindTransferOut Kind = "TransferOut"
	KindOpeningRow  Kind = "OpeningRow"
)

// NoFolio is rendered for entries that have no grouping reference.
const NoFolio = "-"

// Entry is the uniform unit of computation. Debit increases the account's
// outstanding balance, credit decreases it. RunningBalance and the group
// fields are computed outputs and must never be supplied by callers.
type Entry struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"kind"`
	Date       time.Time       `json:"date"` // date-only, UTC midnight
	Particular string          `json:"particular"`
	Folio      string          `json:"folio"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Notes      string          `json:"notes"`

	RunningBalance  decimal.Decimal `json:"running_balance"`
	Visible         bool            `json:"visible"`
	GroupKey        string          `json:"group_key,omitempty"`
	IsGroupTerminal bool            `json:"is_group_terminal,omitempty"`
	GroupSubtotal   decimal.Decimal `json:"group_subtotal"`
}

// Account is the scoped entity a ledger is built for. BaseBalance is the
// externally stored previous/opening balance seeded before any folding.
type Account struct {
	ID          string
	Name        string
	BaseBalance decimal.Decimal
}

// Query is the active filter state. A nil FromDate means "from the
// beginning of history"; a nil ToDate means "up to now".
type Query struct {
	FromDate *time.Time
	ToDate   *time.Time
	Search   string
}

// Result is the rendered statement.
type Result struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Entries        []Entry         `json:"entries"`
	Diagnostics    Diagnostics     `json:"diagnostics"`
}

// Diagnostics surfaces data-quality problems without corrupting the fold:
// undated records are excluded from ordering and both folds, malformed
// amounts are zero-coerced but counted.
type Diagnostics struct {
	Undated        []UndatedRecord `json:"undated,omitempty"`
	CoercedAmounts int             `json:"coerced_amounts"`
}

type UndatedRecord struct {
	SourceID string `json:"source_id"`
	Kind     Kind   `json:"kind"`
}
