package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a System-Notifications document. Notifications are
// standalone; they reference no other entity.
type Notification struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title               string             `json:"title" bson:"title"`
	NotificationMessage string             `json:"notificationMessage" bson:"notificationMessage"`
	Read                bool               `json:"read" bson:"read"`
	Time                time.Time          `json:"time" bson:"time"`
}

type CreateNotificationRequest struct {
	Title               string `json:"title" validate:"required"`
	NotificationMessage string `json:"notificationMessage" validate:"required"`
}
