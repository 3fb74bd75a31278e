package postgres

import (
	"context"
	"time"

	"freightway/internal/domain/repository"
	"freightway/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressChangeLogRepository implements the repository.AddressChangeLogRepository interface.
// The table is owned by the order management side; this repository is read-only.
type addressChangeLogRepository struct {
	db *gorm.DB
}

// NewAddressChangeLogRepository is the constructor for addressChangeLogRepository.
func NewAddressChangeLogRepository(db *gorm.DB) repository.AddressChangeLogRepository {
	return &addressChangeLogRepository{
		db: db,
	}
}

// HasChangeSince reports whether either address of the pair has a change log
// entry strictly newer than the given instant.
func (repo *addressChangeLogRepository) HasChangeSince(ctx context.Context, pickupID, deliveryID uuid.UUID, since time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AddressChangeLogModel{}).
		Where("address_id IN ? AND created_at > ?", []uuid.UUID{pickupID, deliveryID}, since).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to query address change log")
	}

	return count > 0, nil
}
