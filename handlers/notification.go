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

type NotificationController struct {
	notifications *mongo.Collection
}

func NewNotificationController() *NotificationController {
	return &NotificationController{
		notifications: config.GetCollection("System-Notifications"),
	}
}

// GetAllNotifications returns every notification.
func (nc *NotificationController) GetAllNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	cursor, err := nc.notifications.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Notifications not found"})
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Notifications not found"})
	}

	return c.JSON(http.StatusOK, notifications)
}

// CreateNotification inserts an unread notification.
func (nc *NotificationController) CreateNotification(c echo.Context) error {
	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
	}

	notification := models.Notification{
		ID:                  primitive.NewObjectID(),
		Title:               req.Title,
		NotificationMessage: req.NotificationMessage,
		Read:                false,
		Time:                time.Now(),
	}

	if _, err := nc.notifications.InsertOne(c.Request().Context(), notification); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add notification"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"notification": notification,
		"message":      "Notification inserted Successfully",
	})
}

// MarkRead flips the read flag on a notification.
func (nc *NotificationController) MarkRead(c echo.Context) error {
	notificationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id format"})
	}

	result, err := nc.notifications.UpdateOne(c.Request().Context(),
		bson.M{"_id": notificationID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update notification"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Notification not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
