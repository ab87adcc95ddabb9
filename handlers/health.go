package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the unauthenticated liveness probe.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "API is running!"})
}
