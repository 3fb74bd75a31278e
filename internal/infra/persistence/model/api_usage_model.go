package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// APIUsageModel is the GORM-specific struct for the 'api_usages' table.
// Rows are written once per external call and never updated or deleted.
type APIUsageModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	APIType        string         `gorm:"type:varchar(50);not null;index"`
	Endpoint       string         `gorm:"type:varchar(255);not null"`
	RequestParams  datatypes.JSON `gorm:"type:jsonb"`
	ResponseStatus int            `gorm:"not null;default:0"`
	ResponseTimeMs int            `gorm:"not null;default:0;index"`
	Success        bool           `gorm:"not null;index"`
	ErrorMessage   *string        `gorm:"type:text"`
	ResultCount    *int
	RequesterID    *uuid.UUID `gorm:"type:uuid;index"`
	IPAddress      string     `gorm:"type:varchar(45)"`
	UserAgent      string     `gorm:"type:varchar(512)"`
	EstimatedCost  int        `gorm:"not null;default:0"`
	CreatedAt      time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (APIUsageModel) TableName() string {
	return "api_usages"
}
