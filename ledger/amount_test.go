package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name        string
		in          any
		want        string
		wantCoerced bool
	}{
		{"decimal passthrough", decimal.NewFromInt(500), "500", false},
		{"numeric string", "1234.50", "1234.5", false},
		{"formatted string", "1,234.50", "1234.5", false},
		{"int", 75, "75", false},
		{"int64", int64(-20), "-20", false},
		{"float", 10.25, "10.25", false},
		{"nil coerces", nil, "0", true},
		{"empty string coerces", "", "0", true},
		{"garbage string coerces", "abc", "0", true},
		{"unknown shape coerces", struct{}{}, "0", true},
	}
	for _, tc := range cases {
		got, coerced := ParseAmount(tc.in)
		if got.String() != tc.want {
			t.Fatalf("%s: ParseAmount(%v) = %s, want %s", tc.name, tc.in, got.String(), tc.want)
		}
		if coerced != tc.wantCoerced {
			t.Fatalf("%s: ParseAmount(%v) coerced = %v, want %v", tc.name, tc.in, coerced, tc.wantCoerced)
		}
	}
}
