package models

import "time"

// Trip status and visibility enums.
var (
	TripStatuses     = []string{"planning", "confirmed", "ongoing", "completed", "cancelled"}
	TripVisibilities = []string{"private", "public", "friends"}
)

type LatLng struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type Viewport struct {
	Northeast LatLng `json:"northeast" bson:"northeast"`
	Southwest LatLng `json:"southwest" bson:"southwest"`
}

type Geometry struct {
	Location LatLng    `json:"location" bson:"location"`
	Viewport *Viewport `json:"viewport,omitempty" bson:"viewport,omitempty"`
}

type Review struct {
	AuthorName string  `json:"authorName" bson:"authorname"`
	Rating     float64 `json:"rating" bson:"rating"`
	Text       string  `json:"text" bson:"text"`
}

// Activity lives inside a single itinerary day. There is no in-place
// update; callers remove and re-add.
type Activity struct {
	ActivityID       string   `json:"activityid" bson:"activityid"`
	Name             string   `json:"name" bson:"name"`
	Date             string   `json:"date" bson:"date"`
	PhoneNumber      string   `json:"phoneNumber,omitempty" bson:"phonenumber,omitempty"`
	Website          string   `json:"website,omitempty" bson:"website,omitempty"`
	OpeningHours     []string `json:"openingHours,omitempty" bson:"openinghours,omitempty"`
	Photos           []string `json:"photos,omitempty" bson:"photos,omitempty"`
	Reviews          []Review `json:"reviews,omitempty" bson:"reviews,omitempty"`
	BriefDescription string   `json:"briefDescription,omitempty" bson:"briefdescription,omitempty"`
	Geometry         Geometry `json:"geometry" bson:"geometry"`
}

// Place is a resolved place-lookup result attached to placesToVisit.
// GooglePlaceID keeps the upstream identifier; ID is ours.
type Place struct {
	ID               string   `json:"id" bson:"id"`
	GooglePlaceID    string   `json:"placeId" bson:"googleplaceid"`
	Name             string   `json:"name" bson:"name"`
	PhoneNumber      string   `json:"phoneNumber,omitempty" bson:"phonenumber,omitempty"`
	Website          string   `json:"website,omitempty" bson:"website,omitempty"`
	OpeningHours     []string `json:"openingHours,omitempty" bson:"openinghours,omitempty"`
	Photos           []string `json:"photos,omitempty" bson:"photos,omitempty"`
	Reviews          []Review `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Types            []string `json:"types,omitempty" bson:"types,omitempty"`
	FormattedAddress string   `json:"formatted_address,omitempty" bson:"formatted_address,omitempty"`
	BriefDescription string   `json:"briefDescription,omitempty" bson:"briefdescription,omitempty"`
	Geometry         Geometry `json:"geometry" bson:"geometry"`
}

// Expense is append-only; paidBy/splitBy are display strings, not user
// references.
type Expense struct {
	ExpenseID string  `json:"expenseid" bson:"expenseid"`
	Category  string  `json:"category" bson:"category"`
	Price     float64 `json:"price" bson:"price"`
	PaidBy    string  `json:"paidBy" bson:"paidby"`
	SplitBy   string  `json:"splitBy" bson:"splitby"`
}

// ItineraryDay is one calendar day in the trip range. Date is YYYY-MM-DD
// and unique within the trip.
type ItineraryDay struct {
	Date       string     `json:"date" bson:"date"`
	Activities []Activity `json:"activities" bson:"activities"`
}

// Trip is the aggregate root: the document plus its embedded itinerary,
// places and expenses, mutated only through targeted sub-document updates.
type Trip struct {
	TripID        string         `json:"tripid" bson:"tripid"`
	TripName      string         `json:"tripName" bson:"tripname"`
	StartDate     string         `json:"startDate" bson:"startdate"` // display format, e.g. "01 June 2024"
	EndDate       string         `json:"endDate" bson:"enddate"`
	StartDay      string         `json:"startDay,omitempty" bson:"startday,omitempty"`
	EndDay        string         `json:"endDay,omitempty" bson:"endday,omitempty"`
	Background    string         `json:"background,omitempty" bson:"background,omitempty"`
	Notes         string         `json:"notes,omitempty" bson:"notes,omitempty"`
	Budget        *float64       `json:"budget,omitempty" bson:"budget,omitempty"`
	Status        string         `json:"status" bson:"status"`
	Visibility    string         `json:"visibility" bson:"visibility"`
	Tags          []string       `json:"tags,omitempty" bson:"tags,omitempty"`
	Host          string         `json:"host" bson:"host"`
	Travelers     []string       `json:"travelers" bson:"travelers"`
	Itinerary     []ItineraryDay `json:"itinerary" bson:"itinerary"`
	PlacesToVisit []Place        `json:"placesToVisit" bson:"placestovisit"`
	Expenses      []Expense      `json:"expenses" bson:"expenses"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" bson:"updated_at"`
}

// TripStats is a derived view folded over a single loaded document.
type TripStats struct {
	TotalPlaces     int      `json:"totalPlaces"`
	TotalActivities int      `json:"totalActivities"`
	TotalExpenses   float64  `json:"totalExpenses"`
	BudgetRemaining *float64 `json:"budgetRemaining"`
	TravelerCount   int      `json:"travelerCount"`
	DaysCount       int      `json:"daysCount"`
}
