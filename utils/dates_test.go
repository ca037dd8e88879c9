package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	parsed, err := ParseISODate("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseISODate("01 June 2024")
	require.Error(t, err)
	_, err = ParseISODate("2024-13-01")
	require.Error(t, err)
}

func TestDisplayDateRoundTrip(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	display := FormatDisplayDate(day)
	require.Equal(t, "01 June 2024", display)

	back, err := ParseDisplayDate(display)
	require.NoError(t, err)
	require.Equal(t, day, back)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)

	days := DaysBetween(start, end)
	require.Equal(t, []string{"2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"}, days)

	// single-day range, start == end inclusive
	days = DaysBetween(start, start)
	require.Equal(t, []string{"2024-06-29"}, days)

	// reversed range yields nothing
	require.Empty(t, DaysBetween(end, start))
}
