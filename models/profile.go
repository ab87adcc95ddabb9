package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSettings is a User-Settings document. Profile is an open document:
// known keys are username, firstName, surname, email, phone, DoB,
// preferredLanguage, pfpImage, notifications, offlineSync, but updates merge
// whatever fields the client sends.
type UserSettings struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Profile   bson.M             `json:"profile" bson:"profile"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DefaultProfile is the settings document created at registration.
func DefaultProfile(email string) bson.M {
	return bson.M{
		"username":          "",
		"firstName":         "",
		"surname":           "",
		"email":             email,
		"phone":             "",
		"DoB":               "",
		"preferredLanguage": "",
		"pfpImage":          "",
	}
}
