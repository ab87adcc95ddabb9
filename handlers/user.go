package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/st10253994/INSY7315-API/config"
	"github.com/st10253994/INSY7315-API/middleware"
	"github.com/st10253994/INSY7315-API/models"
	"github.com/st10253994/INSY7315-API/utils"
)

type UserController struct {
	users    *mongo.Collection
	settings *mongo.Collection
}

func NewUserController() *UserController {
	return &UserController{
		users:    config.GetCollection("System-Users"),
		settings: config.GetCollection("User-Settings"),
	}
}

// Register creates a System-Users document and its default User-Settings
// profile. Email and password are validated before any store operation.
func (uc *UserController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
	}

	if !utils.ValidateEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email format"})
	}
	if !utils.ValidatePassword(req.Password) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Password must be at least 8 characters with letters, numbers, and special characters",
		})
	}

	ctx := c.Request().Context()

	err := uc.users.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "User already exists"})
	}
	if err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to register user"})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to hash password"})
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		Surname:   req.Surname,
		Role:      "tenant",
		CreatedAt: time.Now(),
	}

	if _, err := uc.users.InsertOne(ctx, user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to register user"})
	}

	settings := models.UserSettings{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Profile:   models.DefaultProfile(user.Email),
		CreatedAt: time.Now(),
	}
	if _, err := uc.settings.InsertOne(ctx, settings); err != nil {
		log.Printf("register: default settings for %s: %v", user.ID.Hex(), err)
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user":    user,
		"message": "User registered Successfully",
	})
}

// Login verifies credentials and issues a 1-hour JWT. All credential
// failures return the same message.
func (uc *UserController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required"})
	}

	var user models.User
	err := uc.users.FindOne(c.Request().Context(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		UserID:  user.ID.Hex(),
		Email:   user.Email,
	})
}

// GetProfile returns the User-Settings document for the user in the path.
func (uc *UserController) GetProfile(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	var settings models.UserSettings
	err = uc.settings.FindOne(c.Request().Context(), bson.M{"userId": userID}).Decode(&settings)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	return c.JSON(http.StatusOK, settings)
}

// PostProfile shallow-merges the submitted fields over the stored profile
// and upserts the settings document. An uploaded profile picture replaces
// pfpImage with its Cloudinary URL.
func (uc *UserController) PostProfile(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	incoming := bson.M{}
	if form, err := c.FormParams(); err == nil {
		for key, values := range form {
			if len(values) > 0 {
				incoming[key] = values[0]
			}
		}
	}
	if len(incoming) == 0 {
		var body map[string]interface{}
		if err := c.Bind(&body); err == nil {
			for k, v := range body {
				incoming[k] = v
			}
		}
	}
	if urls := middleware.UploadedURLs(c); len(urls) > 0 {
		incoming["pfpImage"] = urls[0]
	}

	ctx := c.Request().Context()

	var existing models.UserSettings
	existingProfile := bson.M{}
	if err := uc.settings.FindOne(ctx, bson.M{"userId": userID}).Decode(&existing); err == nil && existing.Profile != nil {
		existingProfile = existing.Profile
	}

	merged := utils.MergeProfile(existingProfile, incoming)
	updatedAt := time.Now()

	_, err = uc.settings.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{
			"userId":    userID,
			"profile":   merged,
			"updatedAt": updatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to update profile"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Profile Updated Successfully",
		"userId":    userID.Hex(),
		"profile":   merged,
		"updatedAt": updatedAt,
	})
}
