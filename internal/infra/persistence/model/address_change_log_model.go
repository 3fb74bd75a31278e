package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressChangeLogModel maps the 'address_change_logs' table. The table is
// owned by the order management service; this service only reads it for
// cache staleness checks.
type AddressChangeLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	AddressID uuid.UUID `gorm:"type:uuid;not null;index:idx_address_change_logs_address_created,priority:1"`
	CreatedAt time.Time `gorm:"not null;index:idx_address_change_logs_address_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (AddressChangeLogModel) TableName() string {
	return "address_change_logs"
}
