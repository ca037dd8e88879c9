package itinerary

import (
	"testing"

	"wanderlog/models"

	"github.com/stretchr/testify/require"
)

// An activity may only land on a day inside the trip's date range;
// anything else must be rejected, never silently swallowed.
func TestHasDay(t *testing.T) {
	days := []models.ItineraryDay{
		{Date: "2024-06-01", Activities: []models.Activity{}},
		{Date: "2024-06-02", Activities: []models.Activity{}},
		{Date: "2024-06-03", Activities: []models.Activity{}},
	}

	require.True(t, hasDay(days, "2024-06-01"))
	require.True(t, hasDay(days, "2024-06-03"))

	require.False(t, hasDay(days, "2024-06-04"))
	require.False(t, hasDay(days, "2024-05-31"))
	require.False(t, hasDay(days, ""))
	require.False(t, hasDay(nil, "2024-06-01"))
}
