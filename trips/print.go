package trips

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"wanderlog/config"
	"wanderlog/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// PrintTrip renders a printable PDF sheet for the trip: header, day
// overview, expense table and a QR link back to the trip. Member only.
func PrintTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to view this trip")
		return
	}

	qrPNG, err := qrcode.Encode(config.BaseURL+"/trip/"+trip.TripID, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	stats := ComputeStats(trip)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, trip.TripName, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"%s - %s\nDays: %d  Activities: %d  Places: %d",
		trip.StartDate, trip.EndDate,
		stats.DaysCount, stats.TotalActivities, stats.TotalPlaces,
	), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Itinerary")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	for _, day := range trip.Itinerary {
		pdf.Cell(0, 7, fmt.Sprintf("%s - %d activities", day.Date, len(day.Activities)))
		pdf.Ln(6)
		for _, act := range day.Activities {
			pdf.Cell(0, 6, "    "+act.Name)
			pdf.Ln(5)
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Expenses")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	for _, exp := range trip.Expenses {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %.2f (paid by %s)", exp.Category, exp.Price, exp.PaidBy))
		pdf.Ln(5)
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", stats.TotalExpenses))
	if stats.BudgetRemaining != nil {
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Budget remaining: %.2f", *stats.BudgetRemaining))
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+trip.TripID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
