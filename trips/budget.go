package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"wanderlog/db"
	"wanderlog/mq"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// SetBudget overwrites the trip's budget ceiling. Member only; the value
// must be a non-negative number.
func SetBudget(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	var input struct {
		Budget *float64 `json:"budget"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Budget == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Budget is required")
		return
	}
	if *input.Budget < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Budget must be a non-negative number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !IsMember(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to modify this trip")
		return
	}

	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{"$set": bson.M{"budget": *input.Budget, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating budget")
		return
	}

	updated, err := ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "budget-set", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Budget updated successfully",
		"trip":    updated,
	})
}
