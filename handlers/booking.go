package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/st10253994/INSY7315-API/config"
	"github.com/st10253994/INSY7315-API/middleware"
	"github.com/st10253994/INSY7315-API/models"
	"github.com/st10253994/INSY7315-API/utils"
)

type BookingController struct {
	bookings *mongo.Collection
	listings *mongo.Collection
}

func NewBookingController() *BookingController {
	return &BookingController{
		bookings: config.GetCollection("Bookings"),
		listings: config.GetCollection("Listings"),
	}
}

// CreateBooking creates a booking for userID on listingID. The listing must
// exist, and a user may hold at most one Pending or Active booking at a
// time. The booking gets the next sequential "B-NNNN" id and starts Pending.
func (bc *BookingController) CreateBooking(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}
	listingID, err := primitive.ObjectIDFromHex(c.Param("listingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.CheckInDate == "" || req.CheckOutDate == "" || req.NumberOfGuests == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Check-in date, check-out date, and number of guests are required",
		})
	}

	totalPrice, err := strconv.ParseFloat(req.TotalPrice, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Total Price must be a valid number"})
	}

	ctx := c.Request().Context()

	var listing models.Listing
	if err := bc.listings.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
	}

	count, err := bc.bookings.CountDocuments(ctx, bson.M{
		"userId":            userID,
		"newBooking.status": bson.M{"$in": []string{models.BookingStatusPending, models.BookingStatusActive}},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create booking"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "User already has an active or pending booking",
		})
	}

	bookingID, err := utils.NextEntityID(ctx, bc.bookings, "B", "newBooking.bookingId")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create booking"})
	}

	documents := utils.NormalizeDocuments(append(req.SupportDocuments, middleware.UploadedURLs(c)...))

	booking := models.Booking{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		ListingDetail: models.ListingRef{
			ListingID: listing.ID,
			Title:     listing.Title,
			Address:   listing.Address,
			Price:     listing.Price,
		},
		NewBooking: models.BookingDetail{
			BookingID:        bookingID,
			CheckInDate:      req.CheckInDate,
			CheckOutDate:     req.CheckOutDate,
			NumberOfGuests:   req.NumberOfGuests,
			SupportDocuments: documents,
			TotalPrice:       totalPrice,
			Status:           models.BookingStatusPending,
			CreatedAt:        time.Now(),
		},
	}

	if _, err := bc.bookings.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Booking id already taken, please retry"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create booking"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Booking created",
		"bookingID": booking.ID.Hex(),
		"booking":   booking,
	})
}

// GetAllBookings returns every booking.
func (bc *BookingController) GetAllBookings(c echo.Context) error {
	ctx := c.Request().Context()

	cursor, err := bc.bookings.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch bookings"})
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch bookings"})
	}

	return c.JSON(http.StatusOK, bookings)
}

// GetBookingByUser returns the user's current booking. Completed and
// Cancelled bookings are never returned.
func (bc *BookingController) GetBookingByUser(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	var booking models.Booking
	err = bc.bookings.FindOne(c.Request().Context(), bson.M{
		"userId": userID,
		"newBooking.status": bson.M{
			"$nin": []string{models.BookingStatusCompleted, models.BookingStatusCancelled},
		},
	}).Decode(&booking)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No Booking Was Found"})
	}

	return c.JSON(http.StatusOK, booking)
}

// UpdateBooking applies a partial update. Status changes are direct
// overwrites; the only check is that the value is a known status.
func (bc *BookingController) UpdateBooking(c echo.Context) error {
	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid booking id"})
	}

	var req models.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	update := bson.M{}
	if req.CheckInDate != nil {
		update["newBooking.checkInDate"] = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		update["newBooking.checkOutDate"] = *req.CheckOutDate
	}
	if req.NumberOfGuests != nil {
		update["newBooking.numberOfGuests"] = *req.NumberOfGuests
	}
	if req.SupportDocuments != nil {
		update["newBooking.supportDocuments"] = utils.NormalizeDocuments(req.SupportDocuments)
	}
	if req.Status != nil {
		if !models.ValidBookingStatus(*req.Status) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid booking status"})
		}
		update["newBooking.status"] = *req.Status
	}
	if len(update) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No valid fields to update"})
	}

	result, err := bc.bookings.UpdateOne(c.Request().Context(),
		bson.M{"_id": bookingID},
		bson.M{"$set": update},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update booking"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Booking not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Booking updated"})
}

// DeleteBooking removes a booking by id.
func (bc *BookingController) DeleteBooking(c echo.Context) error {
	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid booking id"})
	}

	result, err := bc.bookings.DeleteOne(c.Request().Context(), bson.M{"_id": bookingID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete booking"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Booking not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Booking deleted"})
}
