package trips

import (
	"context"
	"net/http"
	"time"

	"wanderlog/db"
	"wanderlog/mq"
	"wanderlog/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var backgroundDir = "./static/trippic"

// UploadBackground replaces the trip's background image with an uploaded
// file, stored with a thumbnail under static/trippic. Member only.
func UploadBackground(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, _, err := r.FormFile("background")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Background file missing")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid image file")
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
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to modify this trip")
		return
	}

	fileName, err := utils.SaveImageWithThumb(img, backgroundDir, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving background")
		return
	}

	background := "/static/trippic/" + fileName
	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{"$set": bson.M{"background": background, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "updated", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"background": background})
}
