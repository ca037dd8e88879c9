package trips

import (
	"testing"

	"wanderlog/models"

	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestComputeStatsEmptyTrip(t *testing.T) {
	trip := &models.Trip{Host: "u1", Travelers: []string{"u1"}}

	stats := ComputeStats(trip)
	require.Equal(t, 0, stats.TotalPlaces)
	require.Equal(t, 0, stats.TotalActivities)
	require.Equal(t, 0.0, stats.TotalExpenses)
	require.Nil(t, stats.BudgetRemaining)
	require.Equal(t, 1, stats.TravelerCount)
	require.Equal(t, 0, stats.DaysCount)
}

func TestComputeStats(t *testing.T) {
	trip := &models.Trip{
		Host:      "u1",
		Travelers: []string{"u1", "u2", "u3"},
		Budget:    floatPtr(500),
		Itinerary: []models.ItineraryDay{
			{Date: "2024-06-01", Activities: []models.Activity{{Name: "a"}, {Name: "b"}}},
			{Date: "2024-06-02", Activities: []models.Activity{{Name: "c"}}},
			{Date: "2024-06-03", Activities: []models.Activity{}},
		},
		PlacesToVisit: []models.Place{{Name: "p1"}, {Name: "p2"}},
		Expenses: []models.Expense{
			{Category: "food", Price: 120.5},
			{Category: "hotel", Price: 200},
		},
	}

	stats := ComputeStats(trip)
	require.Equal(t, 2, stats.TotalPlaces)
	require.Equal(t, 3, stats.TotalActivities)
	require.Equal(t, 320.5, stats.TotalExpenses)
	require.NotNil(t, stats.BudgetRemaining)
	require.Equal(t, 179.5, *stats.BudgetRemaining)
	require.Equal(t, 3, stats.TravelerCount)
	require.Equal(t, 3, stats.DaysCount)
}

// The host is auto-enrolled as a traveler at creation; counting them
// twice would overstate the group size.
func TestComputeStatsDistinctTravelerCount(t *testing.T) {
	trip := &models.Trip{Host: "host", Travelers: []string{"host", "guest"}}
	require.Equal(t, 2, ComputeStats(trip).TravelerCount)

	// legacy documents where the host is absent from travelers
	trip = &models.Trip{Host: "host", Travelers: []string{"guest"}}
	require.Equal(t, 2, ComputeStats(trip).TravelerCount)
}

func TestComputeStatsOverspentBudget(t *testing.T) {
	trip := &models.Trip{
		Host:      "u1",
		Budget:    floatPtr(100),
		Expenses:  []models.Expense{{Category: "food", Price: 150}},
		Travelers: []string{"u1"},
	}

	stats := ComputeStats(trip)
	require.NotNil(t, stats.BudgetRemaining)
	require.Equal(t, -50.0, *stats.BudgetRemaining)
}

func TestComputeStatsIsPure(t *testing.T) {
	trip := &models.Trip{
		Host:      "u1",
		Travelers: []string{"u1", "u2"},
		Expenses:  []models.Expense{{Category: "food", Price: 10}},
	}

	first := ComputeStats(trip)
	second := ComputeStats(trip)
	require.Equal(t, first, second)
	require.Len(t, trip.Travelers, 2)
	require.Len(t, trip.Expenses, 1)
}
