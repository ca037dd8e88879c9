package routes

import (
	"net/http"

	"wanderlog/auth"
	"wanderlog/expenses"
	"wanderlog/invites"
	"wanderlog/itinerary"
	"wanderlog/middleware"
	"wanderlog/places"
	"wanderlog/profile"
	"wanderlog/ratelim"
	"wanderlog/trips"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/trippic/*filepath", http.Dir("static/trippic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/google-login", ratelim.RateLimit(auth.GoogleLogin))
	router.POST("/logout", middleware.Authenticate(auth.Logout))
}

func AddTripRoutes(router *httprouter.Router) {
	router.POST("/trip", middleware.Authenticate(trips.CreateTrip))
	router.GET("/trip/:tripId", middleware.OptionalAuth(trips.GetTrip))
	router.PUT("/trip/:tripId", middleware.Authenticate(trips.UpdateTrip))
	router.DELETE("/trip/:tripId", middleware.Authenticate(trips.DeleteTrip))

	router.POST("/trip/:tripId/archive", middleware.Authenticate(trips.ArchiveTrip))
	router.POST("/trip/:tripId/duplicate", middleware.Authenticate(trips.DuplicateTrip))
	router.DELETE("/trip/:tripId/traveler/:userId", middleware.Authenticate(trips.RemoveTraveler))
	router.GET("/trip/:tripId/stats", middleware.Authenticate(trips.GetTripStats))
	router.POST("/trip/:tripId/background", middleware.Authenticate(trips.UploadBackground))
	router.GET("/trip/:tripId/print", middleware.Authenticate(trips.PrintTrip))
	router.PUT("/setBudget/:tripId", middleware.Authenticate(trips.SetBudget))

	router.GET("/trips/user/:userId", middleware.Authenticate(trips.GetUserTrips))
	router.GET("/trips/search", middleware.OptionalAuth(trips.SearchTrips))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.GET("/trip/:tripId/itinerary", middleware.OptionalAuth(itinerary.GetItinerary))
	router.POST("/trip/:tripId/itinerary", middleware.Authenticate(itinerary.AddActivity))
	router.DELETE("/trip/:tripId/itinerary/:date/activity/:activityId", middleware.Authenticate(itinerary.RemoveActivity))
}

func AddPlaceRoutes(router *httprouter.Router) {
	router.POST("/trip/:tripId/addPlace", middleware.Authenticate(places.AddPlace))
	router.GET("/trip/:tripId/placesToVisit", middleware.OptionalAuth(places.GetPlacesToVisit))
	router.DELETE("/trip/:tripId/place/:placeId", middleware.Authenticate(places.RemovePlace))
}

func AddExpenseRoutes(router *httprouter.Router) {
	router.POST("/addExpense/:tripId", middleware.Authenticate(expenses.AddExpense))
	router.GET("/getExpenses/:tripId", middleware.OptionalAuth(expenses.GetExpenses))
	router.DELETE("/trip/:tripId/expense/:expenseId", middleware.Authenticate(expenses.RemoveExpense))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/profile", middleware.Authenticate(profile.GetUser))
	router.PATCH("/profile/preferences", middleware.Authenticate(profile.UpdatePreferences))
	router.PATCH("/profile/deactivate", middleware.Authenticate(profile.DeactivateUser))

	router.PUT("/user/:userId", middleware.Authenticate(profile.UpdateUser))
	router.GET("/user/:userId/profile", profile.GetPublicProfile)
	router.GET("/user/:userId/stats", middleware.Authenticate(profile.GetUserStats))
	router.GET("/user/:userId/trips/public", profile.GetUserPublicTrips)

	router.GET("/users/search", middleware.Authenticate(profile.SearchUsers))
}

func AddInviteRoutes(router *httprouter.Router) {
	router.POST("/sendInviteEmail/:tripId", ratelim.RateLimit(middleware.Authenticate(invites.SendInviteEmail)))
	router.GET("/joinTrip", invites.JoinTrip)
	router.GET("/trip/:tripId/invite-qr", middleware.Authenticate(invites.InviteQR))
}
