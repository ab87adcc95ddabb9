package handlers

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/api/idtoken"

	"github.com/st10253994/INSY7315-API/config"
	"github.com/st10253994/INSY7315-API/models"
	"github.com/st10253994/INSY7315-API/utils"
)

type GoogleController struct {
	users    *mongo.Collection
	settings *mongo.Collection
}

func NewGoogleController() *GoogleController {
	return &GoogleController{
		users:    config.GetCollection("System-Users"),
		settings: config.GetCollection("User-Settings"),
	}
}

// Login verifies a Google id-token against the configured audience, finds or
// creates the local user by googleId, and issues the same JWT as a password
// login. Any verification failure rejects with 401.
func (gc *GoogleController) Login(c echo.Context) error {
	var req models.GoogleLoginRequest
	if err := c.Bind(&req); err != nil || req.IDToken == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing idToken"})
	}

	ctx := c.Request().Context()

	payload, err := idtoken.Validate(ctx, req.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid Google token"})
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	firstName, surname := splitName(name)

	var user models.User
	err = gc.users.FindOne(ctx, bson.M{"googleId": payload.Subject}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		user = models.User{
			ID:        primitive.NewObjectID(),
			Email:     email,
			FirstName: firstName,
			Surname:   surname,
			Role:      "tenant",
			GoogleID:  payload.Subject,
			PfpImage:  picture,
			CreatedAt: time.Now(),
		}
		if _, err := gc.users.InsertOne(ctx, user); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
		}

		profile := models.DefaultProfile(email)
		profile["firstName"] = firstName
		profile["surname"] = surname
		profile["pfpImage"] = picture
		settings := models.UserSettings{
			ID:        primitive.NewObjectID(),
			UserID:    user.ID,
			Profile:   profile,
			CreatedAt: time.Now(),
		}
		if _, err := gc.settings.InsertOne(ctx, settings); err != nil {
			log.Printf("google login: default settings for %s: %v", user.ID.Hex(), err)
		}
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to look up user"})
	}

	token, err := utils.GenerateJWT(user.GoogleID, user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user": map[string]string{
			"id":       user.ID.Hex(),
			"name":     strings.TrimSpace(user.FirstName + " " + user.Surname),
			"email":    user.Email,
			"pfpImage": user.PfpImage,
		},
	})
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
