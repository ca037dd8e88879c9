package trips

import (
	"testing"
	"time"

	"wanderlog/models"

	"github.com/stretchr/testify/require"
)

func TestBuildItinerary(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	days := BuildItinerary(start, end)
	require.Len(t, days, 3)
	require.Equal(t, "2024-06-01", days[0].Date)
	require.Equal(t, "2024-06-02", days[1].Date)
	require.Equal(t, "2024-06-03", days[2].Date)
	for _, day := range days {
		require.NotNil(t, day.Activities)
		require.Empty(t, day.Activities)
	}
}

func TestBuildItinerarySingleDay(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	days := BuildItinerary(day, day)
	require.Len(t, days, 1)
	require.Equal(t, "2024-06-01", days[0].Date)
}

func TestMembership(t *testing.T) {
	trip := &models.Trip{
		Host:      "u1",
		Travelers: []string{"u1", "u2"},
	}

	require.True(t, IsHost(trip, "u1"))
	require.False(t, IsHost(trip, "u2"))

	require.True(t, IsMember(trip, "u1"))
	require.True(t, IsMember(trip, "u2"))
	require.False(t, IsMember(trip, "u3"))

	// an anonymous caller is never a member, even if an empty id
	// somehow ended up in the travelers array
	trip.Travelers = append(trip.Travelers, "")
	require.False(t, IsMember(trip, ""))
	require.False(t, IsHost(&models.Trip{Host: ""}, ""))
}
