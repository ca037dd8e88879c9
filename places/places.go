package places

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/mq"
	"wanderlog/rdx"
	"wanderlog/trips"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type addPlaceRequest struct {
	PlaceID string `json:"placeId"`
}

// AddPlace resolves a Google place id upstream and appends the result
// to the trip's placesToVisit list.
func AddPlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	var req addPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlaceID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "placeId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	trip, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !trips.IsMember(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to modify this trip")
		return
	}

	place, err := FetchDetails(ctx, req.PlaceID)
	if err != nil {
		log.Printf("place lookup failed for %s: %v", req.PlaceID, err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to resolve place details")
		return
	}
	place.ID = "p" + utils.GenerateID(12)

	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{
			"$push": bson.M{"placestovisit": place},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add place")
		return
	}

	updated, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "place-added", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Place added", "trip": updated})
}

// GetPlacesToVisit returns the trip's saved places, cached briefly in
// redis since place payloads are large and change rarely.
func GetPlacesToVisit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	cacheKey := "trip:places:" + tripID

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if trip.Visibility != "public" && !trips.IsMember(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to view this trip")
		return
	}

	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	places := trip.PlacesToVisit
	if places == nil {
		places = []models.Place{}
	}

	payload, err := json.Marshal(utils.M{"placesToVisit": places})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode places")
		return
	}
	if err := rdx.SetWithExpiry(cacheKey, string(payload), 5*time.Minute); err != nil {
		log.Printf("failed to cache places for %s: %v", tripID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// RemovePlace drops a saved place by our id. Unknown ids are a no-op.
func RemovePlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")
	placeID := ps.ByName("placeId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !trips.IsMember(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to modify this trip")
		return
	}

	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{
			"$pull": bson.M{"placestovisit": bson.M{"id": placeID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove place")
		return
	}

	updated, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "place-removed", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Place removed", "placesToVisit": updated.PlacesToVisit})
}
