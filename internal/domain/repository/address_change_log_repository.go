package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AddressChangeLogRepository reads the append-only address edit log owned by
// the order management side. This service never writes to it.
type AddressChangeLogRepository interface {
	// HasChangeSince reports whether either address of the pair has a change
	// log entry strictly newer than the given instant.
	HasChangeSince(ctx context.Context, pickupID, deliveryID uuid.UUID, since time.Time) (bool, error)
}
