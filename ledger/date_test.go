package ledger

import (
	"testing"
	"time"
)

type tsRecord struct {
	at time.Time
}

func (r tsRecord) TimeValue() time.Time { return r.at }

func TestNormalizeDate_ToleratedShapes(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	local := time.Date(2024, 3, 15, 23, 59, 59, 0, time.FixedZone("X", 0))

	cases := []struct {
		name string
		in   any
	}{
		{"plain date string", "2024-03-15"},
		{"slash date string", "2024/03/15"},
		{"rfc3339 string", "2024-03-15T10:30:00Z"},
		{"datetime string", "2024-03-15 08:00:00"},
		{"time value", local},
		{"time pointer", &local},
		{"timestamp accessor", tsRecord{at: local}},
		{"epoch seconds", int64(1710500400)},
		{"epoch millis", int64(1710500400000)},
	}
	for _, tc := range cases {
		got, ok := NormalizeDate(tc.in)
		if !ok {
			t.Fatalf("%s: NormalizeDate(%v) not ok", tc.name, tc.in)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: NormalizeDate(%v) = %v, want %v", tc.name, tc.in, got, want)
		}
	}
}

func TestNormalizeDate_MissingOrMalformed(t *testing.T) {
	var nilTime *time.Time
	cases := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"garbage string", "not-a-date"},
		{"zero time", time.Time{}},
		{"nil time pointer", nilTime},
		{"zero accessor", tsRecord{}},
		{"zero epoch", int64(0)},
		{"unknown shape", struct{}{}},
	}
	for _, tc := range cases {
		if _, ok := NormalizeDate(tc.in); ok {
			t.Fatalf("%s: NormalizeDate(%v) unexpectedly ok", tc.name, tc.in)
		}
	}
}

func TestDateOnly_DropsTimeOfDay(t *testing.T) {
	in := time.Date(2024, 7, 1, 23, 59, 59, 999, time.UTC)
	got := DateOnly(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Fatalf("DateOnly left a time component: %v", got)
	}
	if !got.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("DateOnly moved the day: %v", got)
	}
}
