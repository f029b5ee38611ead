package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance folds base + sum(debit - credit) over every entry strictly
// dated before fromDate. It must run over the entire unfiltered history:
// the opening balance is a property of "everything before the window", not
// of whatever range is displayed. A nil fromDate means no folding at all.
func OpeningBalance(entries []Entry, fromDate *time.Time, base decimal.Decimal) decimal.Decimal {
	if fromDate == nil {
		return base
	}
	cutoff := DateOnly(*fromDate)
	balance := base
	for _, e := range entries {
		if e.Date.Before(cutoff) {
			balance = balance.Add(e.Debit).Sub(e.Credit)
		}
	}
	return balance
}
