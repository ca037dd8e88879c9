package expenses

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"wanderlog/db"
	"wanderlog/models"
	"wanderlog/mq"
	"wanderlog/trips"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type addExpenseRequest struct {
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	PaidBy   string  `json:"paidBy"`
	SplitBy  string  `json:"splitBy"`
}

func (req *addExpenseRequest) validate() string {
	if strings.TrimSpace(req.Category) == "" {
		return "category is required"
	}
	if req.Price < 0 {
		return "price must be non-negative"
	}
	if strings.TrimSpace(req.PaidBy) == "" {
		return "paidBy is required"
	}
	if strings.TrimSpace(req.SplitBy) == "" {
		return "splitBy is required"
	}
	return ""
}

// AddExpense appends one expense to the trip's ledger. Expenses are
// never edited in place, only added and removed.
func AddExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")

	var req addExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
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

	expense := models.Expense{
		ExpenseID: "x" + utils.GenerateID(12),
		Category:  strings.TrimSpace(req.Category),
		Price:     req.Price,
		PaidBy:    strings.TrimSpace(req.PaidBy),
		SplitBy:   strings.TrimSpace(req.SplitBy),
	}

	_, err = db.TripCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{
			"$push": bson.M{"expenses": expense},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add expense")
		return
	}

	updated, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "expense-added", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Expense added", "trip": updated})
}

// GetExpenses returns the trip's expense list plus the running total.
func GetExpenses(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	expenses := trip.Expenses
	if expenses == nil {
		expenses = []models.Expense{}
	}
	var total float64
	for _, e := range expenses {
		total += e.Price
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"expenses": expenses,
		"total":    total,
		"budget":   trip.Budget,
	})
}

// RemoveExpense deletes an expense by id. Unknown ids are a no-op.
func RemoveExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripId")
	expenseID := ps.ByName("expenseId")

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
			"$pull": bson.M{"expenses": bson.M{"expenseid": expenseID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove expense")
		return
	}

	updated, err := trips.ByID(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}

	mq.Emit(ctx, mq.TripEvent{Method: "expense-removed", TripID: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Expense removed", "expenses": updated.Expenses})
}
