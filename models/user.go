package models

import "time"

type NotificationPrefs struct {
	Email bool `json:"email" bson:"email"`
	Push  bool `json:"push" bson:"push"`
}

type Preferences struct {
	Currency      string            `json:"currency" bson:"currency"`
	Timezone      string            `json:"timezone" bson:"timezone"`
	Notifications NotificationPrefs `json:"notifications" bson:"notifications"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Currency:      "USD",
		Timezone:      "UTC",
		Notifications: NotificationPrefs{Email: true, Push: true},
	}
}

// User is created on first Google sign-in and never hard-deleted;
// IsActive=false marks a deactivated account.
type User struct {
	UserID       string      `json:"userid" bson:"userid"`
	GoogleID     string      `json:"googleId" bson:"googleid"`
	Email        string      `json:"email" bson:"email"`
	Name         string      `json:"name" bson:"name"`
	GivenName    string      `json:"givenName,omitempty" bson:"givenname,omitempty"`
	FamilyName   string      `json:"familyName,omitempty" bson:"familyname,omitempty"`
	Photo        string      `json:"photo,omitempty" bson:"photo,omitempty"`
	RefreshToken string      `json:"-" bson:"refresh_token,omitempty"`
	LastLogin    time.Time   `json:"lastLogin" bson:"last_login"`
	IsActive     bool        `json:"isActive" bson:"isactive"`
	Preferences  Preferences `json:"preferences" bson:"preferences"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}

// UserSummary is the traveler/host projection returned inside trip
// responses (name, email, photo only).
type UserSummary struct {
	UserID string `json:"userid" bson:"userid"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
	Photo  string `json:"photo,omitempty" bson:"photo,omitempty"`
}

type UserStats struct {
	TotalTrips     int     `json:"totalTrips"`
	HostedTrips    int     `json:"hostedTrips"`
	JoinedTrips    int     `json:"joinedTrips"`
	TotalExpenses  float64 `json:"totalExpenses"`
	UpcomingTrips  int     `json:"upcomingTrips"`
	CompletedTrips int     `json:"completedTrips"`
}
