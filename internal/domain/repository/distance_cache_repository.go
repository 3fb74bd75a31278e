// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"freightway/internal/domain/entity"
	"freightway/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for distance cache persistence.
var (
	// ErrCacheEntryNotFound is returned when no valid cache entry exists for an address pair.
	ErrCacheEntryNotFound = errors.New("distance cache entry not found")
)

// DistanceCacheRepository defines the interface for distance cache database operations.
// Entries are append-mostly: new rows are created on every API fallback and
// invalidation only flips the validity flag.
type DistanceCacheRepository interface {
	// Create persists a new cache entry with a coordinate snapshot and the raw provider payload.
	Create(ctx context.Context, entry *entity.DistanceCache) error

	// FindLatestValid retrieves the most recent valid entry for the address pair and priority.
	// Ordering is by creation time descending so the newest row wins when
	// duplicates exist. Returns ErrCacheEntryNotFound when there is none.
	FindLatestValid(ctx context.Context, pickupID, deliveryID uuid.UUID, priority entity.RoutePriority) (*entity.DistanceCache, error)

	// InvalidatePair soft-invalidates every valid entry for the address pair
	// across all priorities and returns the number of affected rows. Rows are
	// never physically deleted.
	InvalidatePair(ctx context.Context, pickupID, deliveryID uuid.UUID) (int64, error)

	// CountValid returns the number of currently valid cache entries.
	CountValid(ctx context.Context) (int64, error)
}
