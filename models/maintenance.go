package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceDetail holds the request fields nested under
// newMaintenanceRequest in a Maintenance-Requests document.
type MaintenanceDetail struct {
	MaintenanceID string    `json:"maintenanceId" bson:"maintenanceId"`
	Issue         string    `json:"issue" bson:"issue"`
	Description   string    `json:"description" bson:"description"`
	Priority      string    `json:"priority" bson:"priority"`
	DocumentURL   []string  `json:"documentURL" bson:"documentURL"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// MaintenanceListingRef snapshots the listing a request was raised against.
type MaintenanceListingRef struct {
	ListingID  primitive.ObjectID `json:"listingID" bson:"listingID"`
	LandlordID string             `json:"landlordID" bson:"landlordID"`
	Address    string             `json:"address" bson:"address"`
}

// MaintenanceRequest is a Maintenance-Requests document. BookingID is the
// sequential id of the active booking the request belongs to.
type MaintenanceRequest struct {
	ID                    primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	UserID                primitive.ObjectID    `json:"userId" bson:"userId"`
	ListingDetail         MaintenanceListingRef `json:"listingDetail" bson:"listingDetail"`
	BookingID             string                `json:"bookingId" bson:"bookingId"`
	NewMaintenanceRequest MaintenanceDetail     `json:"newMaintenanceRequest" bson:"newMaintenanceRequest"`
}

type CreateMaintenanceRequest struct {
	Issue       string   `json:"issue" form:"issue"`
	Description string   `json:"description" form:"description"`
	Priority    string   `json:"priority" form:"priority"`
	DocumentURL []string `json:"documentURL" form:"documentURL"`
}
