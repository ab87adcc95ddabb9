package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/st10253994/INSY7315-API/config"
	"github.com/st10253994/INSY7315-API/models"
	"github.com/st10253994/INSY7315-API/utils"
)

// Context keys set by CheckAuth for downstream handlers.
const (
	ContextUserKey     = "user"
	ContextProfileKey  = "profile"
	ContextLanguageKey = "preferredLanguage"
)

// AuthMiddleware authenticates bearer tokens and resolves the caller.
// Tokens may carry a Mongo ObjectID, a Google account id, or an identity
// only resolvable by email, so resolution walks an ordered strategy list.
type AuthMiddleware struct {
	users    *mongo.Collection
	settings *mongo.Collection
}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{
		users:    config.GetCollection("System-Users"),
		settings: config.GetCollection("User-Settings"),
	}
}

type userResolver func(ctx context.Context, claims *utils.JWTClaims) (*models.User, error)

// CheckAuth validates the Authorization header, resolves the user, strips
// the password hash, and attaches the user, their settings profile, and
// their preferred language (default "en") to the request context.
func (m *AuthMiddleware) CheckAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"message": "No token provided",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"message": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateJWT(tokenParts[1])
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"message": "Your session is expired. Please login again.",
			})
		}

		ctx := c.Request().Context()
		user := m.resolveUser(ctx, claims)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"message": "User not found",
			})
		}
		user.Password = ""

		profile, lang := m.loadProfile(ctx, user.ID)

		c.Set(ContextUserKey, user)
		c.Set(ContextProfileKey, profile)
		c.Set(ContextLanguageKey, lang)

		return next(c)
	}
}

// resolveUser tries each lookup strategy in order until one succeeds.
func (m *AuthMiddleware) resolveUser(ctx context.Context, claims *utils.JWTClaims) *models.User {
	resolvers := []userResolver{
		m.resolveByID,
		m.resolveByGoogleID,
		m.resolveByEmail,
	}

	for _, resolve := range resolvers {
		user, err := resolve(ctx, claims)
		if err == nil && user != nil {
			return user
		}
	}
	return nil
}

func (m *AuthMiddleware) resolveByID(ctx context.Context, claims *utils.JWTClaims) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := m.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *AuthMiddleware) resolveByGoogleID(ctx context.Context, claims *utils.JWTClaims) (*models.User, error) {
	if claims.UserID == "" {
		return nil, mongo.ErrNoDocuments
	}
	var user models.User
	if err := m.users.FindOne(ctx, bson.M{"googleId": claims.UserID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *AuthMiddleware) resolveByEmail(ctx context.Context, claims *utils.JWTClaims) (*models.User, error) {
	if claims.Email == "" {
		return nil, mongo.ErrNoDocuments
	}
	var user models.User
	if err := m.users.FindOne(ctx, bson.M{"email": claims.Email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// loadProfile fetches the caller's settings document. A missing profile is
// an empty map, and the preferred language defaults to "en".
func (m *AuthMiddleware) loadProfile(ctx context.Context, userID primitive.ObjectID) (bson.M, string) {
	var settings models.UserSettings
	err := m.settings.FindOne(ctx, bson.M{"userId": userID}).Decode(&settings)
	if err != nil || settings.Profile == nil {
		return bson.M{}, "en"
	}

	lang := "en"
	if v, ok := settings.Profile["preferredLanguage"].(string); ok && v != "" {
		lang = v
	}
	return settings.Profile, lang
}

// PreferredLanguage reads the resolved language from the request context,
// falling back to the lang query parameter on public routes.
func PreferredLanguage(c echo.Context) string {
	if v, ok := c.Get(ContextLanguageKey).(string); ok && v != "" {
		return v
	}
	if lang := c.QueryParam("lang"); lang != "" {
		return lang
	}
	return "en"
}

// AuthedUser returns the resolved caller, or nil on public routes.
func AuthedUser(c echo.Context) *models.User {
	if u, ok := c.Get(ContextUserKey).(*models.User); ok {
		return u
	}
	return nil
}
