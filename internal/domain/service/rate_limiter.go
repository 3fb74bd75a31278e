package service

import (
	"time"

	"github.com/google/uuid"
)

// RateLimitStatus is the limiter's verdict for one requester at one instant.
type RateLimitStatus struct {
	RequesterID uuid.UUID `json:"requester_id"`
	CallCount   int       `json:"call_count"`
	WindowStart time.Time `json:"window_start"`
	IsLimited   bool      `json:"is_limited"`
}

// RateLimiter counts calls per requester over a fixed window. The limiter is
// in-process and best-effort: state is lost on restart and never shared
// across instances. Whether IsLimited actually blocks a call is the
// caller's decision.
type RateLimiter interface {
	Check(requesterID uuid.UUID) RateLimitStatus
}
