package trips

import (
	"context"
	"net/http"
	"time"

	"wanderlog/models"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
)

// ComputeStats folds the derived counters over a loaded trip document.
// The traveler count is the distinct participant set (host plus
// travelers); the host is auto-enrolled as a traveler at creation, so a
// plain len(travelers)+1 would double-count them.
func ComputeStats(t *models.Trip) models.TripStats {
	totalActivities := 0
	for _, day := range t.Itinerary {
		totalActivities += len(day.Activities)
	}

	totalExpenses := 0.0
	for _, e := range t.Expenses {
		totalExpenses += e.Price
	}

	var remaining *float64
	if t.Budget != nil {
		left := *t.Budget - totalExpenses
		remaining = &left
	}

	participants := map[string]bool{t.Host: true}
	for _, traveler := range t.Travelers {
		participants[traveler] = true
	}

	return models.TripStats{
		TotalPlaces:     len(t.PlacesToVisit),
		TotalActivities: totalActivities,
		TotalExpenses:   totalExpenses,
		BudgetRemaining: remaining,
		TravelerCount:   len(participants),
		DaysCount:       len(t.Itinerary),
	}
}

// GetTripStats returns the derived stats for one trip. Member only.
func GetTripStats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := ByID(ctx, ps.ByName("tripId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !IsMember(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to view this trip")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ComputeStats(trip))
}
