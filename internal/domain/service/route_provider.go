// Package service defines domain-level ports implemented by the infrastructure layer.
package service

import (
	"context"
	"fmt"

	"freightway/internal/domain/entity"
	"freightway/internal/errors"
)

// ErrNoRouteFound is returned when the directions provider responds without
// a usable route. Callers treat this as a hard failure, never as a
// zero-distance result.
var ErrNoRouteFound = errors.New("no route found between origin and destination")

// ProviderError carries the HTTP status of a failed directions call so the
// orchestrator can record it without depending on the concrete client.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("directions provider returned status %d: %s", e.StatusCode, e.Message)
}

// DirectionsParams describe one directions request. Origin and destination
// are pre-encoded as "{lng},{lat}" strings.
type DirectionsParams struct {
	Origin       string               `json:"origin"`
	Destination  string               `json:"destination"`
	Priority     entity.RoutePriority `json:"priority,omitempty"`
	Waypoints    string               `json:"waypoints,omitempty"` // |-separated "{lng},{lat}" pairs
	Avoid        string               `json:"avoid,omitempty"`
	CarFuel      string               `json:"car_fuel,omitempty"` // GASOLINE | DIESEL | LPG
	CarHipass    bool                 `json:"car_hipass,omitempty"`
	Alternatives bool                 `json:"alternatives,omitempty"`
	RoadDetails  bool                 `json:"road_details,omitempty"`
	SummaryOnly  bool                 `json:"summary,omitempty"`
}

// RouteSummary is the parsed summary of one returned route.
type RouteSummary struct {
	DistanceMeters  int
	DurationSeconds int
	TaxiFare        int
	TollFare        int
	Priority        entity.RoutePriority
	ResultMessage   string
}

// DirectionsResult is a successful directions response. RawBody is the
// verbatim provider payload, kept opaque for audit storage.
type DirectionsResult struct {
	Routes     []RouteSummary
	RawBody    []byte
	StatusCode int
}

// RouteProvider is the port to the external directions API. Implementations
// are stateless request/response wrappers: a single attempt, no retry and no
// backoff. Retries, if ever desired, belong to the orchestrator.
type RouteProvider interface {
	GetDirections(ctx context.Context, params DirectionsParams) (*DirectionsResult, error)
}
