// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DistanceCache is a persisted distance calculation result for an address
// pair and route priority. Coordinates are a snapshot taken at calculation
// time; they are not updated when the underlying address records change.
// Entries are never deleted; invalidation only flips IsValid so the audit
// trail survives.
type DistanceCache struct {
	ID                 uuid.UUID     // The unique identifier for the cache entry.
	PickupAddressID    uuid.UUID     // Stable identifier of the pickup address.
	DeliveryAddressID  uuid.UUID     // Stable identifier of the delivery address.
	Priority           RoutePriority // Route priority the result was computed for.
	PickupCoordinate   Coordinate    // Pickup coordinates at calculation time.
	DeliveryCoordinate Coordinate    // Delivery coordinates at calculation time.
	DistanceKm         float64       // Road distance in kilometers, 2 decimal places.
	DurationMinutes    int           // Travel duration in whole minutes.
	RawResponse        []byte        // Verbatim provider response, kept for audit.
	IsValid            bool          // False once the entry has been explicitly invalidated.
	CreatedAt          time.Time     // Timestamp of when this entry was created.
}
