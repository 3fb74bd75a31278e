package handler

import (
	"log/slog"
	"net/http"

	"freightway/internal/delivery/http/response"
	"freightway/internal/domain/entity"
	"freightway/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requesterHeader carries the authenticated requester id, threaded through
// by the back-office gateway.
const requesterHeader = "X-Requester-ID"

// DistanceHandler holds dependencies for distance-related handlers.
type DistanceHandler struct {
	distanceUC usecase.DistanceUsecase
	logger     *slog.Logger
}

// NewDistanceHandler is the constructor for DistanceHandler, injected by Fx.
func NewDistanceHandler(distanceUC usecase.DistanceUsecase, logger *slog.Logger) *DistanceHandler {
	return &DistanceHandler{
		distanceUC: distanceUC,
		logger:     logger,
	}
}

// CalculateDistanceRequest represents the request body for a distance calculation
type CalculateDistanceRequest struct {
	PickupAddressID   string  `json:"pickup_address_id" validate:"required,uuid"`
	DeliveryAddressID string  `json:"delivery_address_id" validate:"required,uuid"`
	PickupLat         float64 `json:"pickup_lat" validate:"required,min=-90,max=90"`
	PickupLng         float64 `json:"pickup_lng" validate:"required,min=-180,max=180"`
	DeliveryLat       float64 `json:"delivery_lat" validate:"required,min=-90,max=90"`
	DeliveryLng       float64 `json:"delivery_lng" validate:"required,min=-180,max=180"`
	Priority          string  `json:"priority" validate:"omitempty,oneof=RECOMMEND TIME DISTANCE"`
	ForceRefresh      bool    `json:"force_refresh"`
}

// InvalidateCacheRequest represents the request body for a cache invalidation
type InvalidateCacheRequest struct {
	PickupAddressID   string `json:"pickup_address_id" validate:"required,uuid"`
	DeliveryAddressID string `json:"delivery_address_id" validate:"required,uuid"`
}

// Calculate handles one distance calculation request
func (h *DistanceHandler) Calculate(c echo.Context) error {
	var req CalculateDistanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid distance calculation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pickupID, err := uuid.Parse(req.PickupAddressID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup address ID")
	}

	deliveryID, err := uuid.Parse(req.DeliveryAddressID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery address ID")
	}

	requesterID, err := h.requesterID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_REQUESTER", "Invalid requester ID header")
	}

	input := &usecase.CalculateDistanceInput{
		PickupAddressID:    pickupID,
		DeliveryAddressID:  deliveryID,
		PickupCoordinate:   entity.Coordinate{Lat: req.PickupLat, Lng: req.PickupLng},
		DeliveryCoordinate: entity.Coordinate{Lat: req.DeliveryLat, Lng: req.DeliveryLng},
		Priority:           entity.RoutePriority(req.Priority),
		ForceRefresh:       req.ForceRefresh,
		RequesterID:        requesterID,
		ClientIP:           c.RealIP(),
		UserAgent:          c.Request().UserAgent(),
	}

	result, err := h.distanceUC.CalculateDistance(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "Distance calculated successfully")
}

// Invalidate handles soft cache invalidation for an address pair
func (h *DistanceHandler) Invalidate(c echo.Context) error {
	var req InvalidateCacheRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cache invalidation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pickupID, err := uuid.Parse(req.PickupAddressID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup address ID")
	}

	deliveryID, err := uuid.Parse(req.DeliveryAddressID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery address ID")
	}

	affected, err := h.distanceUC.InvalidateCache(c.Request().Context(), pickupID, deliveryID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int64{"invalidated": affected}, "Distance cache invalidated")
}

// RateLimitStatus exposes the advisory limiter state for a requester
func (h *DistanceHandler) RateLimitStatus(c echo.Context) error {
	requesterID, err := uuid.Parse(c.Param("requesterID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid requester ID")
	}

	status := h.distanceUC.CheckRateLimit(requesterID)

	return response.Success(c, http.StatusOK, status, "Rate limit status retrieved")
}

// CacheStats exposes the number of valid cache entries for operations
func (h *DistanceHandler) CacheStats(c echo.Context) error {
	stats, err := h.distanceUC.CacheStats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "Cache stats retrieved")
}

// requesterID parses the optional requester header.
func (h *DistanceHandler) requesterID(c echo.Context) (*uuid.UUID, error) {
	raw := c.Request().Header.Get(requesterHeader)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
