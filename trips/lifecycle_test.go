package trips

import (
	"testing"
	"time"

	"wanderlog/models"

	"github.com/stretchr/testify/require"
)

func sampleTrip() *models.Trip {
	budget := 300.0
	return &models.Trip{
		TripID:     "trip-original",
		TripName:   "Kyoto",
		StartDate:  "01 June 2024",
		EndDate:    "03 June 2024",
		Status:     "confirmed",
		Visibility: "private",
		Tags:       []string{"food", "temples"},
		Budget:     &budget,
		Host:       "host1",
		Travelers:  []string{"host1", "guest1"},
		Itinerary: []models.ItineraryDay{
			{Date: "2024-06-01", Activities: []models.Activity{
				{ActivityID: "a1", Name: "Fushimi Inari", Date: "2024-06-01",
					Photos:   []string{"p.jpg"},
					Geometry: models.Geometry{Viewport: &models.Viewport{}}},
			}},
			{Date: "2024-06-02", Activities: []models.Activity{}},
		},
		PlacesToVisit: []models.Place{
			{ID: "p1", Name: "Nishiki Market", Types: []string{"market"}},
		},
		Expenses: []models.Expense{
			{ExpenseID: "x1", Category: "food", Price: 40, PaidBy: "host1", SplitBy: "everyone"},
		},
	}
}

func TestDuplicateOf(t *testing.T) {
	src := sampleTrip()
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	dup := DuplicateOf(src, "guest1", now)

	require.NotEqual(t, src.TripID, dup.TripID)
	require.Equal(t, "Kyoto (Copy)", dup.TripName)
	require.Equal(t, "guest1", dup.Host)
	require.Equal(t, []string{"guest1"}, dup.Travelers)
	require.Equal(t, "planning", dup.Status)
	require.Empty(t, dup.Expenses)
	require.Equal(t, now, dup.CreatedAt)

	// dates and content carry over
	require.Equal(t, src.StartDate, dup.StartDate)
	require.Len(t, dup.Itinerary, 2)
	require.Equal(t, "Fushimi Inari", dup.Itinerary[0].Activities[0].Name)
	require.Len(t, dup.PlacesToVisit, 1)

	// budget is copied by value
	require.NotNil(t, dup.Budget)
	require.Equal(t, *src.Budget, *dup.Budget)
	require.NotSame(t, src.Budget, dup.Budget)
}

func TestDuplicateOfIsolation(t *testing.T) {
	src := sampleTrip()
	dup := DuplicateOf(src, "guest1", time.Now())

	dup.Itinerary[0].Activities[0].Name = "changed"
	dup.Itinerary[0].Activities[0].Photos[0] = "changed.jpg"
	dup.Itinerary[0].Activities[0].Geometry.Viewport.Northeast.Lat = 99
	dup.PlacesToVisit[0].Name = "changed"
	dup.PlacesToVisit[0].Types[0] = "changed"
	dup.Tags[0] = "changed"
	*dup.Budget = 1

	require.Equal(t, "Fushimi Inari", src.Itinerary[0].Activities[0].Name)
	require.Equal(t, "p.jpg", src.Itinerary[0].Activities[0].Photos[0])
	require.Equal(t, 0.0, src.Itinerary[0].Activities[0].Geometry.Viewport.Northeast.Lat)
	require.Equal(t, "Nishiki Market", src.PlacesToVisit[0].Name)
	require.Equal(t, "market", src.PlacesToVisit[0].Types[0])
	require.Equal(t, "food", src.Tags[0])
	require.Equal(t, 300.0, *src.Budget)
}
