package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a System-Users document. Password is the bcrypt hash and is
// stripped before any response leaves the API. Google-federated accounts
// have GoogleID set and no password.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	Surname   string             `json:"surname" bson:"surname"`
	Role      string             `json:"role" bson:"role"`
	GoogleID  string             `json:"googleId,omitempty" bson:"googleId,omitempty"`
	PfpImage  string             `json:"pfpImage,omitempty" bson:"pfpImage,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}
