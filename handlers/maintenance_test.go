package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreateMaintenanceRejectsBadIDs(t *testing.T) {
	mc := &MaintenanceController{}

	c, rec := newJSONContext(t, http.MethodPost, `{}`)
	c.SetParamNames("userID", "listingID")
	c.SetParamValues("bad", primitive.NewObjectID().Hex())

	require.NoError(t, mc.CreateMaintenanceRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid id format")
}

func TestCreateMaintenanceRequiresFields(t *testing.T) {
	mc := &MaintenanceController{}

	c, rec := newJSONContext(t, http.MethodPost, `{"issue":"Leak"}`)
	c.SetParamNames("userID", "listingID")
	c.SetParamValues(primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())

	require.NoError(t, mc.CreateMaintenanceRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All data fields have to be filled in")
}

func TestCreateMaintenanceRejectsMalformedBookingID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("legacy booking without a sequential id", func(mt *mtest.T) {
		listingID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "RentWise.Listings", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: listingID},
				{Key: "address", Value: "12 Main Rd"},
				{Key: "landlordInfo", Value: bson.D{{Key: "landlordId", Value: primitive.NewObjectID()}}},
			}),
			mtest.CreateCursorResponse(0, "RentWise.Bookings", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userId", Value: primitive.NewObjectID()},
				{Key: "newBooking", Value: bson.D{
					{Key: "bookingId", Value: "not-a-booking-id"},
					{Key: "status", Value: "Active"},
				}},
			}),
		)

		mc := &MaintenanceController{maintenance: mt.Coll, listings: mt.Coll, bookings: mt.Coll}

		body := `{"issue":"Leak","description":"Kitchen tap drips","priority":"High"}`
		c, rec := newJSONContext(mt.T, http.MethodPost, body)
		c.SetParamNames("userID", "listingID")
		c.SetParamValues(primitive.NewObjectID().Hex(), listingID.Hex())

		require.NoError(mt, mc.CreateMaintenanceRequest(c))
		assert.Equal(mt, http.StatusInternalServerError, rec.Code)
		assert.Contains(mt, rec.Body.String(), "Error creating maintenance request")
	})
}
