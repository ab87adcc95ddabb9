package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var client *mongo.Client

// ConnectDB initializes the MongoDB connection from MONGODB_URI and verifies
// it with a ping. Fatal on failure since nothing works without the store.
func ConnectDB() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}

	var err error
	client, err = mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB")
}

// DisconnectDB closes the connection (call in main defer).
func DisconnectDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// DatabaseName returns the configured database, defaulting to RentWise.
func DatabaseName() string {
	name := os.Getenv("MONGODB_DATABASE")
	if name == "" {
		name = "RentWise"
	}
	return name
}

// GetCollection returns a collection handle from the application database.
func GetCollection(name string) *mongo.Collection {
	return client.Database(DatabaseName()).Collection(name)
}

// EnsureIndexes creates the uniqueness constraints the services rely on
// instead of check-then-insert races: one favourite per (user, listing) and
// unique sequential ids on bookings and maintenance requests.
func EnsureIndexes(ctx context.Context) error {
	_, err := GetCollection("Favourites").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "listingDetail.listingID", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = GetCollection("Bookings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "newBooking.bookingId", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	if err != nil {
		return err
	}

	_, err = GetCollection("Maintenance-Requests").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "newMaintenanceRequest.maintenanceId", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	return err
}
