package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func byUserID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser returns the caller's own full profile.
func GetUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := byUserID(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": user})
}

// GetPublicProfile returns the summary view of any active user.
func GetPublicProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("userId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var summary models.UserSummary
	err := db.UserCollection.FindOne(ctx,
		bson.M{"userid": userID, "isactive": true},
	).Decode(&summary)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": summary})
}

type updateUserRequest struct {
	Name       *string `json:"name"`
	GivenName  *string `json:"givenName"`
	FamilyName *string `json:"familyName"`
	Photo      *string `json:"photo"`
}

// UpdateUser edits the caller's own display fields. Email and google
// identity are owned by the sign-in flow and cannot be changed here.
func UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if ps.ByName("userId") != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Cannot modify another user's profile")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	set := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "name cannot be empty")
			return
		}
		set["name"] = name
	}
	if req.GivenName != nil {
		set["givenname"] = strings.TrimSpace(*req.GivenName)
	}
	if req.FamilyName != nil {
		set["familyname"] = strings.TrimSpace(*req.FamilyName)
	}
	if req.Photo != nil {
		if *req.Photo != "" && !utils.IsValidURL(*req.Photo) {
			utils.RespondWithError(w, http.StatusBadRequest, "photo must be a valid URL")
			return
		}
		set["photo"] = *req.Photo
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	set["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var user models.User
	if err := res.Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Profile updated", "user": user})
}

// UpdatePreferences merges the posted preference fields into the
// caller's stored preferences.
func UpdatePreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var req struct {
		Currency      *string `json:"currency"`
		Timezone      *string `json:"timezone"`
		Notifications *struct {
			Email *bool `json:"email"`
			Push  *bool `json:"push"`
		} `json:"notifications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	set := bson.M{}
	if req.Currency != nil {
		set["preferences.currency"] = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.Timezone != nil {
		set["preferences.timezone"] = strings.TrimSpace(*req.Timezone)
	}
	if req.Notifications != nil {
		if req.Notifications.Email != nil {
			set["preferences.notifications.email"] = *req.Notifications.Email
		}
		if req.Notifications.Push != nil {
			set["preferences.notifications.push"] = *req.Notifications.Push
		}
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No preferences to update")
		return
	}
	set["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var user models.User
	if err := res.Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Preferences updated", "preferences": user.Preferences})
}

// DeactivateUser soft-deletes the caller's account. Their trips stay;
// sign-in and authenticated requests stop working until reactivation.
func DeactivateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"isactive": false, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to deactivate account")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Account deactivated"})
}

// SearchUsers matches active users by name or email prefix, for the
// invite picker. Requires at least two characters.
func SearchUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		query = strings.TrimSpace(r.URL.Query().Get("q"))
	}
	if len(query) < 2 {
		utils.RespondWithError(w, http.StatusBadRequest, "Search query must be at least 2 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"isactive": true,
		"$or": []bson.M{
			{"name": bson.M{"$regex": query, "$options": "i"}},
			{"email": bson.M{"$regex": "^" + query, "$options": "i"}},
		},
	}

	users, err := utils.FindAndDecode[models.UserSummary](ctx, db.UserCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search users")
		return
	}
	if users == nil {
		users = []models.UserSummary{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"users": users})
}

// GetUserStats folds the user's trips into counters for the profile
// screen. Upcoming means the start date is still in the future.
func GetUserStats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("userId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripCollection,
		bson.M{"$or": []bson.M{{"host": userID}, {"travelers": userID}}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load trips")
		return
	}

	now := time.Now()
	var stats models.UserStats
	for _, t := range trips {
		stats.TotalTrips++
		if t.Host == userID {
			stats.HostedTrips++
		} else {
			stats.JoinedTrips++
		}
		if t.Status == "completed" {
			stats.CompletedTrips++
		}
		if start, err := utils.ParseDisplayDate(t.StartDate); err == nil && start.After(now) {
			stats.UpcomingTrips++
		}
		for _, e := range t.Expenses {
			stats.TotalExpenses += e.Price
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"stats": stats})
}

// GetUserPublicTrips lists another user's public trips.
func GetUserPublicTrips(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("userId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"visibility": "public",
		"$or":        []bson.M{{"host": userID}, {"travelers": userID}},
	}

	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load trips")
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"trips": trips})
}
