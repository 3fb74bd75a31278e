package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DistanceCacheModel is the GORM-specific struct for the 'distance_caches' table.
type DistanceCacheModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PickupAddressID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_distance_caches_pair,priority:1"`
	DeliveryAddressID uuid.UUID      `gorm:"type:uuid;not null;index:idx_distance_caches_pair,priority:2"`
	Priority          string         `gorm:"type:varchar(20);not null;index:idx_distance_caches_pair,priority:3"`
	PickupLat         float64        `gorm:"type:decimal(10,8);not null"`
	PickupLng         float64        `gorm:"type:decimal(11,8);not null"`
	DeliveryLat       float64        `gorm:"type:decimal(10,8);not null"`
	DeliveryLng       float64        `gorm:"type:decimal(11,8);not null"`
	DistanceKm        float64        `gorm:"type:decimal(8,2);not null"`
	DurationMinutes   int            `gorm:"not null"`
	RawResponse       datatypes.JSON `gorm:"type:jsonb"`
	IsValid           bool           `gorm:"not null;default:true"`
	CreatedAt         time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DistanceCacheModel) TableName() string {
	return "distance_caches"
}
