package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/st10253994/INSY7315-API/config"
	"github.com/st10253994/INSY7315-API/models"
)

type ReviewController struct {
	reviews  *mongo.Collection
	listings *mongo.Collection
	users    *mongo.Collection
	bookings *mongo.Collection
}

func NewReviewController() *ReviewController {
	return &ReviewController{
		reviews:  config.GetCollection("Reviews"),
		listings: config.GetCollection("Listings"),
		users:    config.GetCollection("System-Users"),
		bookings: config.GetCollection("Bookings"),
	}
}

// CreateReview records a rating for a listing. The rating must be 1..5, the
// listing and user must exist, and the user must have booked the listing at
// some point. An empty comment is allowed.
func (rc *ReviewController) CreateReview(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}
	listingID, err := primitive.ObjectIDFromHex(c.Param("listingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Rating == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "listingID and rating are required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Rating must be between 1 and 5"})
	}

	ctx := c.Request().Context()

	if err := rc.listings.FindOne(ctx, bson.M{"_id": listingID}).Err(); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
	}
	if err := rc.users.FindOne(ctx, bson.M{"_id": userID}).Err(); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User does not exist"})
	}

	bookingCount, err := rc.bookings.CountDocuments(ctx, bson.M{
		"userId":                  userID,
		"listingDetail.listingID": listingID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error creating review"})
	}
	if bookingCount == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Can only leave a review if booking was made",
		})
	}

	review := models.Review{
		ID:        primitive.NewObjectID(),
		ListingID: listingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if _, err := rc.reviews.InsertOne(ctx, review); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error creating review"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message":  "Review created",
		"reviewId": review.ID.Hex(),
	})
}

// GetReviewsForListing returns every review for the listing in the path.
func (rc *ReviewController) GetReviewsForListing(c echo.Context) error {
	listingID, err := primitive.ObjectIDFromHex(c.Param("listingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	ctx := c.Request().Context()

	cursor, err := rc.reviews.Find(ctx, bson.M{"listingId": listingID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching reviews"})
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching reviews"})
	}

	return c.JSON(http.StatusOK, reviews)
}
