package ledger

import "strings"

// ApplyFilter marks each entry's display visibility from a free-text query
// matched case-insensitively against particular, folio and notes. It never
// removes entries, reorders them, or touches balances; an empty query shows
// everything. The opening row always stays visible.
func ApplyFilter(entries []Entry, query string) {
	q := strings.TrimSpace(strings.ToLower(query))
	for i := range entries {
		if q == "" || entries[i].Kind == KindOpeningRow {
			entries[i].Visible = true
			continue
		}
		entries[i].Visible = strings.Contains(strings.ToLower(entries[i].Particular), q) ||
			strings.Contains(strings.ToLower(entries[i].Folio), q) ||
			strings.Contains(strings.ToLower(entries[i].Notes), q)
	}
}
