package handlers

import (
	"context"
	"log"
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

const listingCachePrefix = "listings"
const listingCacheTTL = 5 * time.Minute

type ListingController struct {
	listings   *mongo.Collection
	users      *mongo.Collection
	translator *utils.Translator
}

func NewListingController() *ListingController {
	return &ListingController{
		listings:   config.GetCollection("Listings"),
		users:      config.GetCollection("System-Users"),
		translator: utils.NewTranslator(),
	}
}

// GetAllListings returns every listing, localized best-effort into the
// caller's language. Results are cached per language; cache failures are
// treated as misses.
func (lc *ListingController) GetAllListings(c echo.Context) error {
	ctx := c.Request().Context()
	lang := middleware.PreferredLanguage(c)
	cacheKey := utils.GenerateQueryCacheKey(listingCachePrefix, map[string]string{"lang": lang})

	var cached []models.Listing
	if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	cursor, err := lc.listings.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching all listings"})
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching all listings"})
	}

	for i := range listings {
		lc.translateListing(ctx, &listings[i], lang)
	}

	if err := utils.SetCached(ctx, cacheKey, listings, listingCacheTTL); err != nil {
		log.Printf("listing cache set: %v", err)
	}

	return c.JSON(http.StatusOK, listings)
}

// GetListingByID returns one listing, localized best-effort.
func (lc *ListingController) GetListingByID(c echo.Context) error {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	ctx := c.Request().Context()

	var listing models.Listing
	if err := lc.listings.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
	}

	lc.translateListing(ctx, &listing, middleware.PreferredLanguage(c))
	return c.JSON(http.StatusOK, listing)
}

// CreateListing creates a listing owned by the landlord in the path. Images
// were already uploaded by the middleware; their URLs are attached here.
// Landlord info is denormalized at creation, never joined at read.
func (lc *ListingController) CreateListing(c echo.Context) error {
	landlordID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	var req models.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing listing details"})
	}

	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Price must be a valid number"})
	}

	ctx := c.Request().Context()

	var landlord models.User
	if err := lc.users.FindOne(ctx, bson.M{"_id": landlordID}).Decode(&landlord); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Landlord not found"})
	}

	listing := models.Listing{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Address:     req.Address,
		Description: req.Description,
		Amenities:   utils.NormalizeAmenities(req.Amenities),
		ImagesURL:   utils.NormalizeDocuments(middleware.UploadedURLs(c)),
		Price:       price,
		LandlordInfo: models.LandlordInfo{
			LandlordID: landlord.ID,
			Name:       landlord.FirstName + " " + landlord.Surname,
		},
		CreatedAt: time.Now(),
	}

	if _, err := lc.listings.InsertOne(ctx, listing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create listing"})
	}

	lc.invalidateCache(ctx)
	return c.JSON(http.StatusCreated, listing)
}

// DeleteListing removes a listing by id.
func (lc *ListingController) DeleteListing(c echo.Context) error {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	ctx := c.Request().Context()

	result, err := lc.listings.DeleteOne(ctx, bson.M{"_id": listingID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete listing"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found or already deleted"})
	}

	lc.invalidateCache(ctx)
	return c.JSON(http.StatusOK, map[string]string{"message": "Listing deleted"})
}

func (lc *ListingController) translateListing(ctx context.Context, listing *models.Listing, lang string) {
	if lang == "" || lang == "en" {
		return
	}
	listing.Title = lc.translator.TranslateText(ctx, listing.Title, lang)
	listing.Description = lc.translator.TranslateText(ctx, listing.Description, lang)
	listing.Amenities = lc.translator.TranslateFields(ctx, listing.Amenities, lang)
}

func (lc *ListingController) invalidateCache(ctx context.Context) {
	if err := utils.InvalidatePrefix(ctx, listingCachePrefix); err != nil {
		log.Printf("listing cache invalidate: %v", err)
	}
}
