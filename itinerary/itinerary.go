package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/mq"
	"wanderlog/trips"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type addActivityRequest struct {
	Date     string          `json:"date"`
	Activity models.Activity `json:"activity"`
}

// hasDay reports whether the itinerary carries an entry for date.
func hasDay(days []models.ItineraryDay, date string) bool {
	for _, day := range days {
		if day.Date == date {
			return true
		}
	}
	return false
}

// GetItinerary returns the per-day plan for a trip.
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

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

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"itinerary": trip.Itinerary})
}

// AddActivity appends an activity to the itinerary entry matching the
// given date. The day must already exist; days are created when the
// trip's date range is set, never on the fly.
func AddActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	var req addActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if _, err := utils.ParseISODate(req.Date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}
	if req.Activity.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Activity name is required")
		return
	}

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
	// the day must exist up front; the arrayFilters push below is a
	// silent no-op when no entry matches
	if !hasDay(trip.Itinerary, req.Date) {
		utils.RespondWithError(w, http.StatusNotFound, "No itinerary day for that date")
		return
	}

	if req.Activity.ActivityID == "" {
		req.Activity.ActivityID = "a" + utils.GenerateID(12)
	}
	req.Activity.Date = req.Date
	if req.Activity.Photos == nil {
		req.Activity.Photos = []string{}
	}

	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{
			"$push": bson.M{"itinerary.$[entry].activities": req.Activity},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"entry.date": req.Date}},
		}),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add activity")
		return
	}

	updated, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "activity-added", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Activity added", "trip": updated})
}

// RemoveActivity deletes an activity by id from the given day.
// Removing an id that is not present is a no-op.
func RemoveActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")
	date := ps.ByName("date")
	activityID := ps.ByName("activityId")

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
			"$pull": bson.M{"itinerary.$[entry].activities": bson.M{"activityid": activityID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"entry.date": date}},
		}),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove activity")
		return
	}

	updated, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "activity-removed", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Activity removed", "itinerary": updated.Itinerary})
}
