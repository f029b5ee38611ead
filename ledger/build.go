package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidDateRange is returned when toDate < fromDate. The range is a
// user-input error to surface, never silently swapped.
var ErrInvalidDateRange = errors.New("invalid date range: toDate is before fromDate")

// BuildLedger runs the whole pipeline as one pure function. The argument
// list is the complete dependency graph of a rebuild: identical inputs
// always produce identical output, and every input change means a full,
// independent recompute.
func BuildLedger(src Sources, account Account, q Query) (*Result, error) {
	if q.FromDate != nil && q.ToDate != nil &&
		DateOnly(*q.ToDate).Before(DateOnly(*q.FromDate)) {
		return nil, ErrInvalidDateRange
	}

	all, diag := Normalize(src)

	opening := OpeningBalance(all, q.FromDate, account.BaseBalance)

	inRange := make([]Entry, 0, len(all))
	for _, e := range all {
		if InRange(e.Date, q.FromDate, q.ToDate) {
			inRange = append(inRange, e)
		}
	}

	rows, closing := ComputeRunning(inRange, opening)
	GroupInvoices(rows)
	ApplyFilter(rows, q.Search)
	ResolveSubtotalRows(rows)

	if q.FromDate != nil {
		rows = append([]Entry{openingRow(account, DateOnly(*q.FromDate), opening)}, rows...)
	}

	return &Result{
		OpeningBalance: opening,
		ClosingBalance: closing,
		Entries:        rows,
		Diagnostics:    diag,
	}, nil
}

// openingRow is the single OpeningRow per rendered ledger: dated at the
// range start, carrying the precomputed opening balance, no debit/credit,
// and excluded from grouping and from any further fold.
func openingRow(account Account, date time.Time, opening decimal.Decimal) Entry {
	return Entry{
		ID:             "opening:" + account.ID,
		Kind:           KindOpeningRow,
		Date:           date,
		Particular:     "Opening Balance",
		Folio:          NoFolio,
		Debit:          decimal.Zero,
		Credit:         decimal.Zero,
		RunningBalance: opening,
		Visible:        true,
	}
}
