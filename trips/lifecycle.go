package trips

import (
	"context"
	"net/http"
	"time"

	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/mq"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ArchiveTrip marks the trip completed. Host only.
func ArchiveTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !IsHost(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Only trip host can archive the trip")
		return
	}

	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{"$set": bson.M{"status": "completed", "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error archiving trip")
		return
	}

	updated, err := ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "archived", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"trip":      updated,
		"travelers": travelerSummaries(ctx, updated),
	})
}

// DuplicateOf builds a fresh copy of src owned by actorID: new id, name
// suffixed " (Copy)", expenses reset, status back to planning. Itinerary
// and places are deep-copied so later mutations never leak between the
// two documents.
func DuplicateOf(src *models.Trip, actorID string, now time.Time) models.Trip {
	dup := *src
	dup.TripID = utils.GenerateID(14)
	dup.TripName = src.TripName + " (Copy)"
	dup.Host = actorID
	dup.Travelers = []string{actorID}
	dup.Expenses = []models.Expense{}
	dup.Status = "planning"
	dup.CreatedAt = now
	dup.UpdatedAt = now

	dup.Itinerary = make([]models.ItineraryDay, len(src.Itinerary))
	for i, day := range src.Itinerary {
		copied := day
		copied.Activities = make([]models.Activity, len(day.Activities))
		for j, act := range day.Activities {
			copied.Activities[j] = copyActivity(act)
		}
		dup.Itinerary[i] = copied
	}

	dup.PlacesToVisit = make([]models.Place, len(src.PlacesToVisit))
	for i, place := range src.PlacesToVisit {
		dup.PlacesToVisit[i] = copyPlace(place)
	}

	if src.Budget != nil {
		b := *src.Budget
		dup.Budget = &b
	}
	if src.Tags != nil {
		dup.Tags = append([]string{}, src.Tags...)
	}

	return dup
}

func copyActivity(a models.Activity) models.Activity {
	c := a
	c.OpeningHours = append([]string(nil), a.OpeningHours...)
	c.Photos = append([]string(nil), a.Photos...)
	c.Reviews = append([]models.Review(nil), a.Reviews...)
	if a.Geometry.Viewport != nil {
		v := *a.Geometry.Viewport
		c.Geometry.Viewport = &v
	}
	return c
}

func copyPlace(p models.Place) models.Place {
	c := p
	c.OpeningHours = append([]string(nil), p.OpeningHours...)
	c.Photos = append([]string(nil), p.Photos...)
	c.Reviews = append([]models.Review(nil), p.Reviews...)
	c.Types = append([]string(nil), p.Types...)
	if p.Geometry.Viewport != nil {
		v := *p.Geometry.Viewport
		c.Geometry.Viewport = &v
	}
	return c
}

// DuplicateTrip copies a trip the actor belongs to into a fresh document
// owned by the actor.
func DuplicateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !IsMember(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to duplicate this trip")
		return
	}

	dup := DuplicateOf(trip, userID, time.Now().UTC())
	if _, err := db.TripCollection.InsertOne(ctx, dup); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error duplicating trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "created", TripID: dup.TripID})
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"trip":      dup,
		"travelers": travelerSummaries(ctx, &dup),
	})
}
