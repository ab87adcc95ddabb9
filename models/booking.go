package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. There is no enforced transition table: status changes
// happen by direct overwrite through the update endpoint.
const (
	BookingStatusPending   = "Pending"
	BookingStatusActive    = "Active"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusActive, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// BookingDetail holds the reservation fields nested under newBooking in a
// Bookings document.
type BookingDetail struct {
	BookingID        string    `json:"bookingId" bson:"bookingId"`
	CheckInDate      string    `json:"checkInDate" bson:"checkInDate"`
	CheckOutDate     string    `json:"checkOutDate" bson:"checkOutDate"`
	NumberOfGuests   int       `json:"numberOfGuests" bson:"numberOfGuests"`
	SupportDocuments []string  `json:"supportDocuments" bson:"supportDocuments"`
	TotalPrice       float64   `json:"totalPrice" bson:"totalPrice"`
	Status           string    `json:"status" bson:"status"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}

// ListingRef is the listing snapshot embedded in a booking.
type ListingRef struct {
	ListingID primitive.ObjectID `json:"listingID" bson:"listingID"`
	Title     string             `json:"title,omitempty" bson:"title,omitempty"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Price     float64            `json:"price,omitempty" bson:"price,omitempty"`
}

// Booking is a Bookings document.
type Booking struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	ListingDetail ListingRef         `json:"listingDetail" bson:"listingDetail"`
	NewBooking    BookingDetail      `json:"newBooking" bson:"newBooking"`
}

// CreateBookingRequest carries booking creation input. TotalPrice arrives as
// a string and must parse to a number.
type CreateBookingRequest struct {
	CheckInDate      string   `json:"checkInDate" form:"checkInDate" validate:"required"`
	CheckOutDate     string   `json:"checkOutDate" form:"checkOutDate" validate:"required"`
	NumberOfGuests   int      `json:"numberOfGuests" form:"numberOfGuests" validate:"required,gt=0"`
	TotalPrice       string   `json:"totalPrice" form:"totalPrice"`
	SupportDocuments []string `json:"supportDocuments" form:"supportDocuments"`
}

// UpdateBookingRequest carries the partial update; nil fields are ignored.
type UpdateBookingRequest struct {
	CheckInDate      *string  `json:"checkInDate"`
	CheckOutDate     *string  `json:"checkOutDate"`
	NumberOfGuests   *int     `json:"numberOfGuests"`
	Status           *string  `json:"status"`
	SupportDocuments []string `json:"supportDocuments"`
}
