package utils

import (
	"fmt"
	"time"
)

const (
	// ISODate is the wire format for itinerary day dates.
	ISODate = "2006-01-02"
	// DisplayDate is how trip start/end dates are stored, matching the
	// mobile client's "DD MMMM YYYY" rendering.
	DisplayDate = "02 January 2006"
)

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseDisplayDate parses a stored "02 January 2006" date string.
func ParseDisplayDate(s string) (time.Time, error) {
	return time.Parse(DisplayDate, s)
}

func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDate)
}

// DaysBetween returns every calendar day from start to end inclusive in
// ISO format. Callers validate ordering beforehand.
func DaysBetween(start, end time.Time) []string {
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(ISODate))
	}
	return days
}
