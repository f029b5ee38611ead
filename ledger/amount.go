package ledger

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a heterogeneous amount field to a decimal. Malformed
// or missing values coerce to zero instead of failing the build; that
// leniency matches the legacy records this engine has to tolerate. The
// bool reports whether coercion happened so callers can count it into
// Diagnostics rather than lose the signal.
func ParseAmount(v any) (decimal.Decimal, bool) {
	switch a := v.(type) {
	case nil:
		return decimal.Zero, true
	case decimal.Decimal:
		return a, false
	case string:
		s := strings.TrimSpace(a)
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return decimal.Zero, true
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, true
		}
		return d, false
	case int:
		return decimal.NewFromInt(int64(a)), false
	case int64:
		return decimal.NewFromInt(a), false
	case float64:
		return decimal.NewFromFloat(a), false
	case json.Number:
		d, err := decimal.NewFromString(string(a))
		if err != nil {
			return decimal.Zero, true
		}
		return d, false
	default:
		return decimal.Zero, true
	}
}
