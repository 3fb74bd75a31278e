package service

import (
	"context"

	"freightway/internal/domain/entity"

	"github.com/google/uuid"
)

// UsageRecorder persists API usage records with best-effort semantics: a
// failure to write is logged and swallowed, returning uuid.Nil, so metering
// problems never abort the primary calculation flow.
type UsageRecorder interface {
	Record(ctx context.Context, usage *entity.APIUsage) uuid.UUID
}
