package handlers

import (
	"log"
	"net/http"
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

type MaintenanceController struct {
	maintenance *mongo.Collection
	listings    *mongo.Collection
	bookings    *mongo.Collection
}

func NewMaintenanceController() *MaintenanceController {
	return &MaintenanceController{
		maintenance: config.GetCollection("Maintenance-Requests"),
		listings:    config.GetCollection("Listings"),
		bookings:    config.GetCollection("Bookings"),
	}
}

// CreateMaintenanceRequest logs a maintenance request against the listing
// the user currently holds an Active booking for. Issue, description and
// priority are all required; uploaded documents are attached by URL.
func (mc *MaintenanceController) CreateMaintenanceRequest(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}
	listingID, err := primitive.ObjectIDFromHex(c.Param("listingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	var req models.CreateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Issue == "" || req.Description == "" || req.Priority == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All data fields have to be filled in"})
	}

	ctx := c.Request().Context()

	var listing models.Listing
	if err := mc.listings.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
	}

	var booking models.Booking
	err = mc.bookings.FindOne(ctx, bson.M{
		"userId":                  userID,
		"listingDetail.listingID": listingID,
		"newBooking.status":       models.BookingStatusActive,
	}).Decode(&booking)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "There are no active bookings with the property to log the maintenance Request for",
		})
	}

	// The booking id is copied into the snapshot; a legacy document with a
	// malformed id must not propagate.
	if !utils.IsValidSequentialID(booking.NewBooking.BookingID) {
		log.Printf("maintenance: booking %s has malformed bookingId %q", booking.ID.Hex(), booking.NewBooking.BookingID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error creating maintenance request"})
	}

	maintenanceID, err := utils.NextEntityID(ctx, mc.maintenance, "M", "newMaintenanceRequest.maintenanceId")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error creating maintenance request"})
	}

	documents := utils.NormalizeDocuments(append(req.DocumentURL, middleware.UploadedURLs(c)...))

	request := models.MaintenanceRequest{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		ListingDetail: models.MaintenanceListingRef{
			ListingID:  listing.ID,
			LandlordID: listing.LandlordInfo.LandlordID.Hex(),
			Address:    listing.Address,
		},
		BookingID: booking.NewBooking.BookingID,
		NewMaintenanceRequest: models.MaintenanceDetail{
			MaintenanceID: maintenanceID,
			Issue:         req.Issue,
			Description:   req.Description,
			Priority:      req.Priority,
			DocumentURL:   documents,
			Status:        "Pending",
			CreatedAt:     time.Now(),
		},
	}

	if _, err := mc.maintenance.InsertOne(ctx, request); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error creating maintenance request"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message":       "New Maintenance Request has been submitted",
		"maintenanceID": request.ID.Hex(),
	})
}

// GetMaintenanceRequestsForUser returns every request the user has logged.
func (mc *MaintenanceController) GetMaintenanceRequestsForUser(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	ctx := c.Request().Context()

	cursor, err := mc.maintenance.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching maintenance requests"})
	}
	defer cursor.Close(ctx)

	requests := []models.MaintenanceRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching maintenance requests"})
	}

	return c.JSON(http.StatusOK, requests)
}
