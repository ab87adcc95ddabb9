package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingSnapshot is the denormalized copy of a listing embedded in a
// favourite at write time.
type ListingSnapshot struct {
	ListingID    primitive.ObjectID `json:"listingID" bson:"listingID"`
	Title        string             `json:"title" bson:"title"`
	Address      string             `json:"address" bson:"address"`
	Description  string             `json:"description" bson:"description"`
	Amenities    []string           `json:"amenities" bson:"amenities"`
	Images       []string           `json:"images" bson:"images"`
	Price        float64            `json:"price" bson:"price"`
	IsFavourited bool               `json:"isFavourited" bson:"isFavourited"`
	LandlordInfo LandlordInfo       `json:"landlordInfo" bson:"landlordInfo"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// Favourite is a Favourites document.
type Favourite struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	ListingDetail ListingSnapshot    `json:"listingDetail" bson:"listingDetail"`
	FavouritedAt  time.Time          `json:"favouritedAt" bson:"favouritedAt"`
}
