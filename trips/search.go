package trips

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/rdx"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const searchLimit = 20

// BuildSearchFilter builds the public-trip search criteria: optional
// case-insensitive substring match over name and notes, any-of match on
// normalized tags and an exact status filter.
func BuildSearchFilter(query, tags, status string) bson.M {
	filter := bson.M{"visibility": "public"}

	if query != "" {
		re := primitive.Regex{Pattern: query, Options: "i"}
		filter["$or"] = []bson.M{
			{"tripname": re},
			{"notes": re},
		}
	}
	if tagList := utils.SplitTags(tags); len(tagList) > 0 {
		filter["tags"] = bson.M{"$in": tagList}
	}
	if status != "" {
		filter["status"] = status
	}

	return filter
}

// SearchTrips searches public trips, newest first, capped at 20 results.
// Results are served from a short-lived redis cache when possible.
func SearchTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	query, tags, status := q.Get("query"), q.Get("tags"), q.Get("status")

	cacheKey := "trips:search:" + url.QueryEscape(query) + ":" + url.QueryEscape(tags) + ":" + url.QueryEscape(status)
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(searchLimit)
	cursor, err := db.TripCollection.Find(ctx, BuildSearchFilter(query, tags, status), opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error searching trips")
		return
	}
	defer cursor.Close(ctx)

	trips := []models.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error searching trips")
		return
	}

	data, err := json.Marshal(trips)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error searching trips")
		return
	}
	if err := rdx.SetWithExpiry(cacheKey, string(data), time.Minute); err != nil {
		log.Printf("Failed to cache search results: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
