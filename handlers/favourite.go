package handlers

import (
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

type FavouriteController struct {
	favourites *mongo.Collection
	listings   *mongo.Collection
	translator *utils.Translator
}

func NewFavouriteController() *FavouriteController {
	return &FavouriteController{
		favourites: config.GetCollection("Favourites"),
		listings:   config.GetCollection("Listings"),
		translator: utils.NewTranslator(),
	}
}

// FavouriteListing saves a denormalized snapshot of the listing for the
// user. The unique index on (userId, listingDetail.listingID) backs up the
// duplicate pre-check.
func (fc *FavouriteController) FavouriteListing(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}
	listingID, err := primitive.ObjectIDFromHex(c.Param("listingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	ctx := c.Request().Context()

	var listing models.Listing
	if err := fc.listings.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
	}

	count, err := fc.favourites.CountDocuments(ctx, bson.M{
		"userId":                  userID,
		"listingDetail.listingID": listingID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error favouriting listing"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Favourite already exists"})
	}

	favourite := models.Favourite{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		ListingDetail: models.ListingSnapshot{
			ListingID:    listing.ID,
			Title:        listing.Title,
			Address:      listing.Address,
			Description:  listing.Description,
			Amenities:    listing.Amenities,
			Images:       listing.ImagesURL,
			Price:        listing.Price,
			IsFavourited: true,
			LandlordInfo: listing.LandlordInfo,
			CreatedAt:    time.Now(),
		},
		FavouritedAt: time.Now(),
	}

	if _, err := fc.favourites.InsertOne(ctx, favourite); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Favourite already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error favouriting listing"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message":     "Listing favourited",
		"favouriteId": favourite.ID.Hex(),
	})
}

// GetFavourites returns the user's favourites, snapshot text localized
// best-effort.
func (fc *FavouriteController) GetFavourites(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	ctx := c.Request().Context()

	cursor, err := fc.favourites.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching favourited listings"})
	}
	defer cursor.Close(ctx)

	favourites := []models.Favourite{}
	if err := cursor.All(ctx, &favourites); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching favourited listings"})
	}

	lang := middleware.PreferredLanguage(c)
	if lang != "" && lang != "en" {
		for i := range favourites {
			snap := &favourites[i].ListingDetail
			snap.Title = fc.translator.TranslateText(ctx, snap.Title, lang)
			snap.Description = fc.translator.TranslateText(ctx, snap.Description, lang)
			snap.Amenities = fc.translator.TranslateFields(ctx, snap.Amenities, lang)
		}
	}

	return c.JSON(http.StatusOK, favourites)
}

// UnfavouriteListing removes the user's favourite for the listing.
func (fc *FavouriteController) UnfavouriteListing(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}
	listingID, err := primitive.ObjectIDFromHex(c.Param("listingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	result, err := fc.favourites.DeleteOne(c.Request().Context(), bson.M{
		"userId":                  userID,
		"listingDetail.listingID": listingID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error unfavouriting listing"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "there are not current favourites to delete"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Listing unfavourited"})
}
