package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"wanderlog/db"
	"wanderlog/globals"
	"wanderlog/middleware"
	"wanderlog/models"
	"wanderlog/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	sessionTokenTTL = 1 * time.Hour
	tokenInfoURL    = "https://oauth2.googleapis.com/tokeninfo"
	upstreamTimeout = 10 * time.Second
)

var httpClient = &http.Client{Timeout: upstreamTimeout}

// tokenInfo is the subset of Google's tokeninfo response we use.
type tokenInfo struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// GoogleLogin verifies an upstream Google ID token, upserts the user by
// googleId and issues a short-lived session token. Upstream failures are
// surfaced, never papered over with fixture data.
func GoogleLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.IDToken == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	info, err := verifyIDToken(r.Context(), input.IDToken)
	if err != nil {
		log.Printf("Google token verification failed: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Google authentication failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// single upsert keyed on googleid: two first logins racing both land
	// here and exactly one inserts, the other just stamps last_login
	var user models.User
	err = db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"googleid": info.Sub},
		loginUpsert(info, time.Now().UTC()),
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		log.Printf("Failed to upsert user for google id %s: %v", info.Sub, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if !user.IsActive {
		utils.RespondWithError(w, http.StatusForbidden, "Account is deactivated")
		return
	}

	tokenString, err := issueSessionToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Google login successful",
		"user":    user,
		"token":   tokenString,
	})
}

// loginUpsert builds the update applied on every Google login: the full
// profile document on first insert, only the last_login stamp after that.
func loginUpsert(info *tokenInfo, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{"last_login": now},
		"$setOnInsert": bson.M{
			"userid":      "u" + utils.GenerateID(10),
			"googleid":    info.Sub,
			"email":       info.Email,
			"name":        info.Name,
			"givenname":   info.GivenName,
			"familyname":  info.FamilyName,
			"photo":       info.Picture,
			"isactive":    true,
			"preferences": models.DefaultPreferences(),
			"created_at":  now,
			"updated_at":  now,
		},
	}
}

// Logout clears the stored refresh token for the acting user.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$unset": bson.M{"refresh_token": ""}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func verifyIDToken(ctx context.Context, idToken string) (*tokenInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		tokenInfoURL+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo returned status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("tokeninfo decode failed: %w", err)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("tokeninfo response missing subject or email")
	}
	return &info, nil
}

func issueSessionToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		UserID: user.UserID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
