package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/st10253994/INSY7315-API/utils"
)

// invokeCheckAuth runs the middleware against a request carrying the given
// Authorization header. The next handler records whether it was reached.
func invokeCheckAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	m := &AuthMiddleware{}
	handler := m.CheckAuth(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, reached
}

func TestCheckAuthMissingHeader(t *testing.T) {
	rec, reached := invokeCheckAuth(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
	assert.False(t, reached)
}

func TestCheckAuthMalformedHeader(t *testing.T) {
	for _, header := range []string{
		"sometoken",
		"Basic sometoken",
		"Bearer one two",
	} {
		rec, reached := invokeCheckAuth(t, header)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid authorization header format")
		assert.False(t, reached)
	}
}

func TestCheckAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, reached := invokeCheckAuth(t, "Bearer not.a.valid.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your session is expired. Please login again.")
	assert.False(t, reached)
}

func TestCheckAuthUnknownUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("valid token for a deleted user", func(mt *mtest.T) {
		mt.Setenv("JWT_SECRET", "test-secret")
		token, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), "ghost@example.com")
		require.NoError(mt, err)

		// All three resolvers miss: by ObjectID, by googleId, by email.
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "RentWise.System-Users", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "RentWise.System-Users", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "RentWise.System-Users", mtest.FirstBatch),
		)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		reached := false
		m := &AuthMiddleware{users: mt.Coll, settings: mt.Coll}
		handler := m.CheckAuth(func(c echo.Context) error {
			reached = true
			return c.NoContent(http.StatusOK)
		})

		require.NoError(mt, handler(c))
		assert.Equal(mt, http.StatusUnauthorized, rec.Code)
		assert.Contains(mt, rec.Body.String(), "User not found")
		assert.False(mt, reached)
	})
}

func TestPreferredLanguage(t *testing.T) {
	e := echo.New()

	t.Run("context value wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set(ContextLanguageKey, "de")

		assert.Equal(t, "de", PreferredLanguage(c))
	})

	t.Run("query param on public routes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "fr", PreferredLanguage(c))
	})

	t.Run("defaults to english", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "en", PreferredLanguage(c))
	})
}

func TestAuthedUserOnPublicRoute(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, AuthedUser(c))
}
