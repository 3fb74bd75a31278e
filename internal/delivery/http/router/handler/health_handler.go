package handler

import (
	"net/http"

	"freightway/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
