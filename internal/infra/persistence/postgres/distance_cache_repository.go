// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"freightway/internal/domain/entity"
	domainerrors "freightway/internal/domain/errors"
	"freightway/internal/domain/repository"
	"freightway/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// distanceCacheRepository implements the repository.DistanceCacheRepository interface.
type distanceCacheRepository struct {
	db *gorm.DB
}

// NewDistanceCacheRepository is the constructor for distanceCacheRepository.
func NewDistanceCacheRepository(db *gorm.DB) repository.DistanceCacheRepository {
	return &distanceCacheRepository{
		db: db,
	}
}

// Create persists a new cache entry with a coordinate snapshot and the raw provider payload.
func (repo *distanceCacheRepository) Create(ctx context.Context, entry *entity.DistanceCache) error {
	entryM := fromDistanceCacheDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required cache entry information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create distance cache entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindLatestValid retrieves the most recent valid entry for the address pair and priority.
// Ordering by recency means the newest row wins when duplicates exist.
func (repo *distanceCacheRepository) FindLatestValid(ctx context.Context, pickupID, deliveryID uuid.UUID, priority entity.RoutePriority) (*entity.DistanceCache, error) {
	var entryM model.DistanceCacheModel

	if err := repo.db.WithContext(ctx).
		Where("pickup_address_id = ? AND delivery_address_id = ? AND priority = ? AND is_valid = ?",
			pickupID, deliveryID, string(priority), true).
		Order("created_at DESC").
		First(&entryM).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCacheEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find distance cache entry")
	}

	return toDistanceCacheDomain(&entryM), nil
}

// InvalidatePair soft-invalidates every valid entry for the address pair across all priorities.
func (repo *distanceCacheRepository) InvalidatePair(ctx context.Context, pickupID, deliveryID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DistanceCacheModel{}).
		Where("pickup_address_id = ? AND delivery_address_id = ? AND is_valid = ?", pickupID, deliveryID, true).
		Update("is_valid", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to invalidate distance cache entries")
	}

	return result.RowsAffected, nil
}

// CountValid returns the number of currently valid cache entries.
func (repo *distanceCacheRepository) CountValid(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DistanceCacheModel{}).
		Where("is_valid = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count valid distance cache entries")
	}

	return count, nil
}

// fromDistanceCacheDomain converts the domain entity to the GORM model.
func fromDistanceCacheDomain(entry *entity.DistanceCache) *model.DistanceCacheModel {
	return &model.DistanceCacheModel{
		ID:                entry.ID,
		PickupAddressID:   entry.PickupAddressID,
		DeliveryAddressID: entry.DeliveryAddressID,
		Priority:          string(entry.Priority),
		PickupLat:         entry.PickupCoordinate.Lat,
		PickupLng:         entry.PickupCoordinate.Lng,
		DeliveryLat:       entry.DeliveryCoordinate.Lat,
		DeliveryLng:       entry.DeliveryCoordinate.Lng,
		DistanceKm:        entry.DistanceKm,
		DurationMinutes:   entry.DurationMinutes,
		RawResponse:       datatypes.JSON(entry.RawResponse),
		IsValid:           entry.IsValid,
		CreatedAt:         entry.CreatedAt,
	}
}

// toDistanceCacheDomain converts the GORM model to the domain entity.
func toDistanceCacheDomain(entryM *model.DistanceCacheModel) *entity.DistanceCache {
	return &entity.DistanceCache{
		ID:                 entryM.ID,
		PickupAddressID:    entryM.PickupAddressID,
		DeliveryAddressID:  entryM.DeliveryAddressID,
		Priority:           entity.RoutePriority(entryM.Priority),
		PickupCoordinate:   entity.Coordinate{Lat: entryM.PickupLat, Lng: entryM.PickupLng},
		DeliveryCoordinate: entity.Coordinate{Lat: entryM.DeliveryLat, Lng: entryM.DeliveryLng},
		DistanceKm:         entryM.DistanceKm,
		DurationMinutes:    entryM.DurationMinutes,
		RawResponse:        []byte(entryM.RawResponse),
		IsValid:            entryM.IsValid,
		CreatedAt:          entryM.CreatedAt,
	}
}
