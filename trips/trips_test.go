package trips

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildUpdateSet(t *testing.T) {
	tags := []string{"beach", "family"}
	input := &updateTripRequest{
		TripName:   strPtr("Okinawa"),
		StartDate:  strPtr("2024-08-01"),
		Status:     strPtr("confirmed"),
		Visibility: strPtr("public"),
		Tags:       &tags,
		Notes:      strPtr("bring sunscreen"),
	}

	set, errMsg := buildUpdateSet(input)
	require.Empty(t, errMsg)
	require.Equal(t, "Okinawa", set["tripname"])
	require.Equal(t, "01 August 2024", set["startdate"])
	require.Equal(t, "confirmed", set["status"])
	require.Equal(t, "public", set["visibility"])
	require.Equal(t, tags, set["tags"])
	require.Equal(t, "bring sunscreen", set["notes"])
	require.NotContains(t, set, "enddate")
}

func TestBuildUpdateSetRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input updateTripRequest
	}{
		{"empty name", updateTripRequest{TripName: strPtr("")}},
		{"bad start date", updateTripRequest{StartDate: strPtr("not-a-date")}},
		{"bad status", updateTripRequest{Status: strPtr("paused")}},
		{"bad visibility", updateTripRequest{Visibility: strPtr("unlisted")}},
		{"bad background", updateTripRequest{Background: strPtr("javascript:alert(1)")}},
		{"no fields", updateTripRequest{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, errMsg := buildUpdateSet(&tc.input)
			require.Nil(t, set)
			require.NotEmpty(t, errMsg)
		})
	}
}

// Name length is measured in characters, not bytes: a 40-character CJK
// name is well inside the 100 limit even at three bytes per rune.
func TestBuildUpdateSetMultibyteName(t *testing.T) {
	name := strings.Repeat("東", 40)
	set, errMsg := buildUpdateSet(&updateTripRequest{TripName: &name})
	require.Empty(t, errMsg)
	require.Equal(t, name, set["tripname"])

	long := strings.Repeat("東", 101)
	set, errMsg = buildUpdateSet(&updateTripRequest{TripName: &long})
	require.Nil(t, set)
	require.NotEmpty(t, errMsg)
}

func TestNormalizeDate(t *testing.T) {
	display, ok := normalizeDate("2024-06-01")
	require.True(t, ok)
	require.Equal(t, "01 June 2024", display)

	// already stored form passes through unchanged
	display, ok = normalizeDate("01 June 2024")
	require.True(t, ok)
	require.Equal(t, "01 June 2024", display)

	_, ok = normalizeDate("06/01/2024")
	require.False(t, ok)
}
