package ledger

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date-only format for ledger dates.
const DateLayout = "2006-01-02"

var stringDateLayouts = []string{
	DateLayout,
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// TimeValuer is implemented by timestamp-like source values that expose
// their point in time through an accessor instead of being a time.Time.
type TimeValuer interface {
	TimeValue() time.Time
}

// NormalizeDate coerces the three tolerated date shapes (string,
// timestamp-accessor object, raw time/epoch value) into a date-only
// time.Time at UTC midnight. No time-of-day component is trusted.
// A missing or unparseable date returns ok == false; callers must route
// such records into the undated bucket, never assign a default date.
func NormalizeDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range stringDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return DateOnly(t), true
			}
		}
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return DateOnly(d), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return DateOnly(*d), true
	case TimeValuer:
		t := d.TimeValue()
		if t.IsZero() {
			return time.Time{}, false
		}
		return DateOnly(t), true
	case int:
		return epochDate(int64(d))
	case int64:
		return epochDate(d)
	case float64:
		return epochDate(int64(d))
	case json.Number:
		n, err := strconv.ParseInt(string(d), 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return epochDate(n)
	default:
		return time.Time{}, false
	}
}

// DateOnly truncates t to UTC midnight, the only granularity the ledger
// compares at. toDate inclusiveness falls out of this: same-day entries
// compare equal, never after.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func epochDate(n int64) (time.Time, bool) {
	if n <= 0 {
		return time.Time{}, false
	}
	// Values past the year ~33658 in seconds are epoch milliseconds.
	if n > 1_000_000_000_000 {
		return DateOnly(time.UnixMilli(n).UTC()), true
	}
	return DateOnly(time.Unix(n, 0).UTC()), true
}
