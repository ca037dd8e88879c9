package config

import (
	"os"
)

var (
	MongoURI     string
	RedisAddr    string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	PlacesAPIKey string
	BaseURL      string
)

// Load reads service configuration from the environment. Mail and place
// lookup stay optional; the handlers that need them fail with an upstream
// error when the values are missing.
func Load() {
	MongoURI = os.Getenv("MONGODB_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017"
	}

	RedisAddr = os.Getenv("REDIS_ADDR")
	if RedisAddr == "" {
		RedisAddr = "localhost:6379"
	}

	SMTPHost = os.Getenv("SMTP_HOST")
	SMTPPort = os.Getenv("SMTP_PORT")
	if SMTPPort == "" {
		SMTPPort = "587"
	}
	SMTPUser = os.Getenv("SMTP_USER")
	SMTPPass = os.Getenv("SMTP_PASS")

	PlacesAPIKey = os.Getenv("GOOGLE_PLACES_API_KEY")

	BaseURL = os.Getenv("APP_BASE_URL")
	if BaseURL == "" {
		BaseURL = "http://localhost:8080"
	}
}
