package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a Reviews document. A review requires a prior booking for the
// (user, listing) pair.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ListingID primitive.ObjectID `json:"listingId" bson:"listingId"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
