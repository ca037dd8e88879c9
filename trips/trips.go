package trips

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/mq"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type createTripRequest struct {
	TripName   string `json:"tripName"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	StartDay   string `json:"startDay"`
	EndDay     string `json:"endDay"`
	Background string `json:"background"`
}

// CreateTrip creates a trip with one itinerary entry per day in the
// range and the host auto-enrolled as a traveler.
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if n := utf8.RuneCountInString(input.TripName); n < 1 || n > 100 {
		utils.RespondWithError(w, http.StatusBadRequest, "Trip name must be between 1 and 100 characters")
		return
	}
	start, err := utils.ParseISODate(input.StartDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Start date must be a valid date")
		return
	}
	end, err := utils.ParseISODate(input.EndDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "End date must be a valid date")
		return
	}
	if !end.After(start) {
		utils.RespondWithError(w, http.StatusBadRequest, "End date must be after start date")
		return
	}
	if !utils.IsValidURL(input.Background) {
		utils.RespondWithError(w, http.StatusBadRequest, "Background must be a valid URL")
		return
	}

	startDay := input.StartDay
	if startDay == "" {
		startDay = start.Weekday().String()
	}
	endDay := input.EndDay
	if endDay == "" {
		endDay = end.Weekday().String()
	}

	now := time.Now().UTC()
	trip := models.Trip{
		TripID:        utils.GenerateID(14),
		TripName:      input.TripName,
		StartDate:     utils.FormatDisplayDate(start),
		EndDate:       utils.FormatDisplayDate(end),
		StartDay:      startDay,
		EndDay:        endDay,
		Background:    input.Background,
		Status:        "planning",
		Visibility:    "private",
		Host:          userID,
		Travelers:     []string{userID},
		Itinerary:     BuildItinerary(start, end),
		PlacesToVisit: []models.Place{},
		Expenses:      []models.Expense{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.TripCollection.InsertOne(ctx, trip); err != nil {
		log.Printf("Error inserting trip: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "created", TripID: trip.TripID})
	utils.RespondWithJSON(w, http.StatusCreated, trip)
}

// GetTrip returns one trip. Private trips are only visible to members.
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := ByID(ctx, ps.ByName("tripId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	if trip.Visibility != "public" && !IsMember(trip, utils.GetUserIDFromRequest(r)) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to view this trip")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"trip":      trip,
		"travelers": travelerSummaries(ctx, trip),
	})
}

// GetUserTrips lists the trips a user hosts or travels on, newest first,
// with status filtering and limit/offset pagination.
func GetUserTrips(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("userId")
	limit, offset := utils.ParseLimitOffset(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"), 10)

	filter := bson.M{"$or": []bson.M{{"host": userID}, {"travelers": userID}}}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	total, err := db.TripCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))
	cursor, err := db.TripCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}
	defer cursor.Close(ctx)

	trips := []models.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"trips": trips,
		"pagination": map[string]any{
			"total":   total,
			"limit":   limit,
			"offset":  offset,
			"hasMore": total > int64(offset+limit),
		},
	})
}

type updateTripRequest struct {
	TripName   *string   `json:"tripName"`
	StartDate  *string   `json:"startDate"`
	EndDate    *string   `json:"endDate"`
	StartDay   *string   `json:"startDay"`
	EndDay     *string   `json:"endDay"`
	Status     *string   `json:"status"`
	Visibility *string   `json:"visibility"`
	Tags       *[]string `json:"tags"`
	Background *string   `json:"background"`
	Notes      *string   `json:"notes"`
}

// UpdateTrip merges whitelisted fields into the document. Host or any
// traveler may update.
func UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	var input updateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	set, errMsg := buildUpdateSet(&input)
	if errMsg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, errMsg)
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
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to update this trip")
		return
	}

	set["updated_at"] = time.Now().UTC()
	if _, err := db.TripCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating trip")
		return
	}

	updated, err := ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "updated", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"trip":      updated,
		"travelers": travelerSummaries(ctx, updated),
	})
}

// buildUpdateSet validates the patch and maps it onto document fields.
// Returns a non-empty message on validation failure.
func buildUpdateSet(input *updateTripRequest) (bson.M, string) {
	set := bson.M{}

	if input.TripName != nil {
		if n := utf8.RuneCountInString(*input.TripName); n < 1 || n > 100 {
			return nil, "Trip name must be between 1 and 100 characters"
		}
		set["tripname"] = *input.TripName
	}
	if input.StartDate != nil {
		display, ok := normalizeDate(*input.StartDate)
		if !ok {
			return nil, "Start date must be a valid date"
		}
		set["startdate"] = display
	}
	if input.EndDate != nil {
		display, ok := normalizeDate(*input.EndDate)
		if !ok {
			return nil, "End date must be a valid date"
		}
		set["enddate"] = display
	}
	if input.StartDay != nil {
		set["startday"] = *input.StartDay
	}
	if input.EndDay != nil {
		set["endday"] = *input.EndDay
	}
	if input.Status != nil {
		if !validStatus(*input.Status) {
			return nil, "Invalid trip status"
		}
		set["status"] = *input.Status
	}
	if input.Visibility != nil {
		if !validVisibility(*input.Visibility) {
			return nil, "Invalid visibility setting"
		}
		set["visibility"] = *input.Visibility
	}
	if input.Tags != nil {
		set["tags"] = *input.Tags
	}
	if input.Background != nil {
		if !utils.IsValidURL(*input.Background) {
			return nil, "Background must be a valid URL"
		}
		set["background"] = *input.Background
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	if len(set) == 0 {
		return nil, "No updatable fields supplied"
	}
	return set, ""
}

// normalizeDate accepts ISO or display-formatted input and returns the
// stored display form. Changing dates does not regenerate the itinerary;
// that would silently destroy planned activities.
func normalizeDate(s string) (string, bool) {
	if t, err := utils.ParseISODate(s); err == nil {
		return utils.FormatDisplayDate(t), true
	}
	if t, err := utils.ParseDisplayDate(s); err == nil {
		return utils.FormatDisplayDate(t), true
	}
	return "", false
}

// DeleteTrip removes the trip and everything embedded in it. Host only.
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := ByID(ctx, tripID)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !IsHost(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Only trip host can delete the trip")
		return
	}

	if _, err := db.TripCollection.DeleteOne(ctx, bson.M{"tripid": tripID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "deleted", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Trip deleted successfully"})
}
