package invites

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"wanderlog/config"
	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/mq"
	"wanderlog/trips"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

type inviteRequest struct {
	Email string `json:"email"`
}

// JoinLink builds the URL an invitee follows to join a trip.
func JoinLink(tripID, email string) string {
	q := url.Values{}
	q.Set("tripId", tripID)
	q.Set("email", email)
	return config.BaseURL + "/joinTrip?" + q.Encode()
}

func inviteBody(senderName, tripName, joinURL string) string {
	return fmt.Sprintf(`<h3>Hello,</h3>
<p>%s has invited you to join their trip "<strong>%s</strong>".</p>
<p>Click the button below to join the trip:</p>
<a href="%s"
  style="background-color: #4B61D1; color: white; padding: 10px 20px; text-decoration: none; font-size: 16px; border-radius: 5px;">
  Join Trip
</a>
<p>If the button doesn't work, copy and paste this link into your browser:</p>
<p>%s</p>
<p>Best regards,</p>
<p>Wanderlog team</p>`, senderName, tripName, joinURL, joinURL)
}

func sendMail(to, subject, htmlBody string) error {
	if config.SMTPHost == "" || config.SMTPUser == "" {
		return fmt.Errorf("mail service not configured")
	}

	msg := strings.Join([]string{
		"From: " + config.SMTPUser,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	auth := smtp.PlainAuth("", config.SMTPUser, config.SMTPPass, config.SMTPHost)
	addr := config.SMTPHost + ":" + config.SMTPPort
	return smtp.SendMail(addr, auth, config.SMTPUser, []string{to}, []byte(msg))
}

// SendInviteEmail mails a join link for the trip to the given address.
// Only members can invite; mail failures surface as upstream errors.
func SendInviteEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trip, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !trips.IsMember(trip, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to invite to this trip")
		return
	}

	senderName := userID
	var sender models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&sender); err == nil {
		senderName = sender.Name
	}

	joinURL := JoinLink(tripID, email)
	subject := "Invitation to join the trip: " + trip.TripName
	if err := sendMail(email, subject, inviteBody(senderName, trip.TripName, joinURL)); err != nil {
		log.Printf("invite mail to %s failed: %v", email, err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to send invitation email")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Invitation email sent successfully"})
}

// JoinTrip adds the user behind the invited email to the travelers
// list. The link is opened from the invite mail, so this is a GET.
func JoinTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tripID := r.URL.Query().Get("tripId")
	email := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
	if tripID == "" || email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "tripId and email are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	trip, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if utils.Contains(trip.Travelers, user.UserID) {
		utils.RespondWithError(w, http.StatusConflict, "User is already a traveler")
		return
	}

	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{
			"$addToSet": bson.M{"travelers": user.UserID},
			"$set":      bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to join trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "traveler-joined", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "You have been successfully added to the trip"})
}

// InviteQR renders the join link as a PNG, for sharing in person.
func InviteQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")
	email := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
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
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to invite to this trip")
		return
	}

	png, err := qrcode.Encode(JoinLink(tripID, email), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
