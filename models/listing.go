package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LandlordInfo is denormalized into listings at creation time; there is no
// live join back to System-Users.
type LandlordInfo struct {
	LandlordID primitive.ObjectID `json:"landlordId" bson:"landlordId"`
	Name       string             `json:"name" bson:"name"`
}

// Listing is a Listings document.
type Listing struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Address      string             `json:"address" bson:"address"`
	Description  string             `json:"description" bson:"description"`
	Amenities    []string           `json:"amenities" bson:"amenities"`
	ImagesURL    []string           `json:"imagesURL" bson:"imagesURL"`
	Price        float64            `json:"price" bson:"price"`
	LandlordInfo LandlordInfo       `json:"landlordInfo" bson:"landlordInfo"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateListingRequest carries the multipart form fields for listing
// creation. Price arrives as a string and is parsed server-side; amenities
// may be sent as repeated fields or one comma-separated value.
type CreateListingRequest struct {
	Title       string   `json:"title" form:"title" validate:"required"`
	Address     string   `json:"address" form:"address" validate:"required"`
	Description string   `json:"description" form:"description" validate:"required"`
	Price       string   `json:"price" form:"price" validate:"required"`
	Amenities   []string `json:"amenities" form:"amenities"`
}
