package trips

import (
	"context"
	"time"

	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ByID fetches a trip document. Callers translate mongo.ErrNoDocuments
// into a 404.
func ByID(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	err := db.TripCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func IsHost(t *models.Trip, userID string) bool {
	return userID != "" && t.Host == userID
}

// IsMember reports whether userID is the host or a current traveler.
func IsMember(t *models.Trip, userID string) bool {
	if IsHost(t, userID) {
		return true
	}
	return userID != "" && utils.Contains(t.Travelers, userID)
}

// BuildItinerary expands the trip date range into one empty day entry per
// calendar day, start and end inclusive.
func BuildItinerary(start, end time.Time) []models.ItineraryDay {
	dates := utils.DaysBetween(start, end)
	days := make([]models.ItineraryDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, models.ItineraryDay{Date: d, Activities: []models.Activity{}})
	}
	return days
}

// travelerSummaries resolves the travelers list to profile summaries for
// responses, mirroring the client's populated-trip shape.
func travelerSummaries(ctx context.Context, t *models.Trip) []models.UserSummary {
	if len(t.Travelers) == 0 {
		return []models.UserSummary{}
	}
	summaries, err := utils.FindAndDecode[models.UserSummary](ctx, db.UserCollection,
		bson.M{"userid": bson.M{"$in": t.Travelers}})
	if err != nil {
		return []models.UserSummary{}
	}
	return summaries
}

func validStatus(s string) bool {
	return utils.Contains(models.TripStatuses, s)
}

func validVisibility(v string) bool {
	return utils.Contains(models.TripVisibilities, v)
}
