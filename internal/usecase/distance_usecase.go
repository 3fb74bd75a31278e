package usecase

import (
	"context"
	"time"

	"freightway/internal/domain/entity"
	"freightway/internal/domain/service"

	"github.com/google/uuid"
)

// Calculation method values in DistanceResult.
const (
	MethodCached = "cached"
	MethodAPI    = "api"
)

// Accuracy values in DistanceResult. Accuracy degrades to medium when the
// provider could not honour the requested route priority.
const (
	AccuracyHigh   = "high"
	AccuracyMedium = "medium"
)

// CalculateDistanceInput is one distance calculation request. Coordinates
// are required even when a cache hit is expected, because a stale or missing
// entry falls through to the directions API.
type CalculateDistanceInput struct {
	PickupAddressID    uuid.UUID
	DeliveryAddressID  uuid.UUID
	PickupCoordinate   entity.Coordinate
	DeliveryCoordinate entity.Coordinate
	Priority           entity.RoutePriority // defaults to RECOMMEND when empty
	ForceRefresh       bool
	RequesterID        *uuid.UUID
	ClientIP           string
	UserAgent          string
}

// DistanceResultMetadata carries secondary facts about a calculation.
type DistanceResultMetadata struct {
	CalculatedAt      time.Time `json:"calculated_at"`
	AlternativeRoutes int       `json:"alternative_routes"`
	TrafficConsidered bool      `json:"traffic_considered"`
}

// DistanceResult is the outcome of one distance calculation.
type DistanceResult struct {
	DistanceKm      float64                  `json:"distance_km"`
	DurationMinutes int                      `json:"duration_minutes"`
	Method          string                   `json:"method"`
	CacheHit        bool                     `json:"cache_hit"`
	CacheID         *uuid.UUID               `json:"cache_id,omitempty"`
	APICallID       *uuid.UUID               `json:"api_call_id,omitempty"`
	Accuracy        string                   `json:"accuracy"`
	RateLimit       *service.RateLimitStatus `json:"rate_limit,omitempty"`
	Metadata        DistanceResultMetadata   `json:"metadata"`
}

// CacheStats is a point-in-time view of the distance cache, exposed for
// operations.
type CacheStats struct {
	ValidEntries int64 `json:"valid_entries"`
}

// DistanceUsecase defines the distance calculation use cases.
type DistanceUsecase interface {
	// CalculateDistance resolves the road distance and duration for an
	// address pair: cache first, staleness-checked against the address
	// change log, with the directions API as fallback. Every invocation
	// that reaches the API produces exactly one usage record; a cache hit
	// produces none.
	CalculateDistance(ctx context.Context, input *CalculateDistanceInput) (*DistanceResult, error)

	// InvalidateCache soft-invalidates all cache entries for the address
	// pair and returns the number of affected rows.
	InvalidateCache(ctx context.Context, pickupID, deliveryID uuid.UUID) (int64, error)

	// CheckRateLimit exposes the advisory limiter state for a requester.
	CheckRateLimit(requesterID uuid.UUID) service.RateLimitStatus

	// CacheStats reports the current number of valid cache entries.
	CacheStats(ctx context.Context) (CacheStats, error)
}
