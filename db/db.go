package db

import (
	"context"
	"log"
	"time"

	"wanderlog/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection *mongo.Collection
	TripCollection *mongo.Collection
	Client         *mongo.Client
)

// Init connects to MongoDB and binds the users and trips collections.
// Trips embed their itinerary days, places and expenses; there are no
// separate collections for the nested data.
func Init() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	Client = client

	UserCollection = Client.Database("wanderlog").Collection("users")
	TripCollection = Client.Database("wanderlog").Collection("trips")

	ensureIndexes(ctx)
	log.Println("Connected to MongoDB 🚀")
}

func ensureIndexes(ctx context.Context) {
	unique := options.Index().SetUnique(true)
	_, err := UserCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "googleid", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		log.Printf("Failed to create user indexes: %v", err)
	}

	_, err = TripCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "tripid", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "host", Value: 1}}},
		{Keys: bson.D{{Key: "travelers", Value: 1}}},
		{Keys: bson.D{{Key: "visibility", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		log.Printf("Failed to create trip indexes: %v", err)
	}
}
