package util

import "time"

// DayLayout is the ISO calendar date format used on the wire.
const DayLayout = "2006-01-02"

// FormatDay renders t as YYYY-MM-DD in UTC.
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD string. Returns (t, true) on success.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaySeries returns n consecutive calendar days starting at start, ascending.
func DaySeries(start time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, FormatDay(start.AddDate(0, 0, i)))
	}
	return days
}
