package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// InRange reports whether a date-only d falls inside [from, to], both ends
// inclusive. Dates are compared at day granularity, so a toDate of the same
// day never excludes that day's entries.
func InRange(d time.Time, from, to *time.Time) bool {
	if from != nil && d.Before(DateOnly(*from)) {
		return false
	}
	if to != nil && d.After(DateOnly(*to)) {
		return false
	}
	return true
}

// ComputeRunning sorts entries ascending by date (stable: equal dates keep
// their arrival order) and folds balance_i = balance_{i-1} + debit - credit
// seeded with opening. Returns the annotated slice and the closing balance;
// an empty slice closes at the opening balance.
func ComputeRunning(entries []Entry, opening decimal.Decimal) ([]Entry, decimal.Decimal) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	balance := opening
	for i := range entries {
		balance = balance.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].RunningBalance = balance
	}
	return entries, balance
}
