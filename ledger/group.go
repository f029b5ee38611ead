package ledger

import "github.com/shopspring/decimal"

func groupable(e Entry) bool {
	if e.Kind != KindSaleItem && e.Kind != KindPurchase {
		return false
	}
	return e.Folio != "" && e.Folio != NoFolio
}

// GroupInvoices clusters sale-derived entries (and their supplier-side
// purchase mirror) sharing a folio and attaches the invoice subtotal to the
// group's last row in post-sort order. The subtotal is an annotation on an
// existing row, never a new entry, so it can't leak into any balance fold.
// Call after ComputeRunning: positions here are the sorted positions.
func GroupInvoices(entries []Entry) {
	groups := map[string][]int{}
	for i, e := range entries {
		if groupable(e) {
			groups[e.Folio] = append(groups[e.Folio], i)
		}
	}
	for folio, idxs := range groups {
		subtotal := decimal.Zero
		for _, i := range idxs {
			subtotal = subtotal.Add(entries[i].Debit)
			entries[i].GroupKey = folio
			entries[i].IsGroupTerminal = false
			entries[i].GroupSubtotal = decimal.Zero
		}
		last := idxs[len(idxs)-1]
		entries[last].IsGroupTerminal = true
		entries[last].GroupSubtotal = subtotal
	}
}

// ResolveSubtotalRows re-attaches subtotals after visibility flags are set:
// a group whose members are all hidden shows no subtotal; otherwise the
// subtotal rides on the last visible member actually rendered, which is not
// necessarily the chronologically last one. Subtotal values themselves are
// computed over the whole group regardless of visibility.
func ResolveSubtotalRows(entries []Entry) {
	groups := map[string][]int{}
	for i, e := range entries {
		if e.GroupKey != "" {
			groups[e.GroupKey] = append(groups[e.GroupKey], i)
		}
	}
	for _, idxs := range groups {
		subtotal := decimal.Zero
		lastVisible := -1
		for _, i := range idxs {
			subtotal = subtotal.Add(entries[i].Debit)
			entries[i].IsGroupTerminal = false
			entries[i].GroupSubtotal = decimal.Zero
			if entries[i].Visible {
				lastVisible = i
			}
		}
		if lastVisible >= 0 {
			entries[lastVisible].IsGroupTerminal = true
			entries[lastVisible].GroupSubtotal = subtotal
		}
	}
}
