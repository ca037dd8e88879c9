package trips

import (
	"context"
	"net/http"
	"time"

	"wanderlog/db"
	"wanderlog/mq"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// RemoveTraveler pulls a user from the travelers list. The actor must be
// the host or the traveler being removed; pulling an id that is not in
// the list succeeds silently.
func RemoveTraveler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	actorID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")
	targetID := ps.ByName("userId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	if !IsHost(trip, actorID) && actorID != targetID {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to remove this traveler")
		return
	}

	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{
			"$pull": bson.M{"travelers": targetID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error removing traveler")
		return
	}

	updated, err := ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "traveler-removed", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"trip":      updated,
		"travelers": travelerSummaries(ctx, updated),
	})
}
