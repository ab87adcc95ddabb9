package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateReviewRejectsBadIDs(t *testing.T) {
	rc := &ReviewController{}

	c, rec := newJSONContext(t, http.MethodPost, `{"rating":4}`)
	c.SetParamNames("userID", "listingID")
	c.SetParamValues(primitive.NewObjectID().Hex(), "bad")

	require.NoError(t, rc.CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid id format")
}

func TestCreateReviewRequiresRating(t *testing.T) {
	rc := &ReviewController{}

	c, rec := newJSONContext(t, http.MethodPost, `{"comment":"great place"}`)
	c.SetParamNames("userID", "listingID")
	c.SetParamValues(primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())

	require.NoError(t, rc.CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "listingID and rating are required")
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	rc := &ReviewController{}

	for _, body := range []string{`{"rating":-1}`, `{"rating":6}`} {
		c, rec := newJSONContext(t, http.MethodPost, body)
		c.SetParamNames("userID", "listingID")
		c.SetParamValues(primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())

		require.NoError(t, rc.CreateReview(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Rating must be between 1 and 5")
	}
}

func TestGetReviewsRejectsBadListingID(t *testing.T) {
	rc := &ReviewController{}

	c, rec := newJSONContext(t, http.MethodGet, "")
	c.SetParamNames("listingID")
	c.SetParamValues("nope")

	require.NoError(t, rc.GetReviewsForListing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
