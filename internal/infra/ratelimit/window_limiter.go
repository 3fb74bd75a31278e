// Package ratelimit provides the in-process fixed-window call limiter.
package ratelimit

import (
	"math/rand/v2"
	"sync"
	"time"

	"freightway/config"
	"freightway/internal/domain/service"

	"github.com/google/uuid"
)

const (
	defaultWindow        = time.Minute
	defaultMaxCalls      = 10
	defaultCleanupChance = 0.01
)

type windowEntry struct {
	count       int
	windowStart time.Time
}

// WindowLimiter counts calls per requester over a fixed window. State lives
// only in this process and is lost on restart; that is acceptable for an
// advisory limiter on a low-QPS internal tool.
type WindowLimiter struct {
	mu sync.Mutex

	window        time.Duration
	maxCalls      int
	cleanupChance float64

	entries map[uuid.UUID]*windowEntry

	now  func() time.Time
	rand func() float64
}

// NewWindowLimiter creates a limiter from configuration.
func NewWindowLimiter(cfg *config.Config) service.RateLimiter {
	limitCfg := cfg.RateLimit
	if limitCfg == nil {
		limitCfg = &config.RateLimitConfig{}
	}

	window := limitCfg.Window
	if window <= 0 {
		window = defaultWindow
	}

	maxCalls := limitCfg.MaxCalls
	if maxCalls <= 0 {
		maxCalls = defaultMaxCalls
	}

	cleanupChance := limitCfg.CleanupChance
	if cleanupChance <= 0 || cleanupChance > 1 {
		cleanupChance = defaultCleanupChance
	}

	return newWindowLimiter(window, maxCalls, cleanupChance, time.Now, rand.Float64)
}

func newWindowLimiter(window time.Duration, maxCalls int, cleanupChance float64, now func() time.Time, rnd func() float64) *WindowLimiter {
	return &WindowLimiter{
		window:        window,
		maxCalls:      maxCalls,
		cleanupChance: cleanupChance,
		entries:       make(map[uuid.UUID]*windowEntry),
		now:           now,
		rand:          rnd,
	}
}

// Check counts one call for the requester and reports the window state.
// The verdict is advisory; enforcement is the caller's decision.
func (l *WindowLimiter) Check(requesterID uuid.UUID) service.RateLimitStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	entry, ok := l.entries[requesterID]
	if !ok || now.Sub(entry.windowStart) >= l.window {
		entry = &windowEntry{count: 1, windowStart: now}
		l.entries[requesterID] = entry
	} else {
		entry.count++
	}

	// Probabilistic sweep bounds memory without a background timer.
	if l.rand() < l.cleanupChance {
		l.sweepLocked(now)
	}

	return service.RateLimitStatus{
		RequesterID: requesterID,
		CallCount:   entry.count,
		WindowStart: entry.windowStart,
		IsLimited:   entry.count > l.maxCalls,
	}
}

// sweepLocked removes entries whose window started more than twice the
// window length ago. Callers must hold the mutex.
func (l *WindowLimiter) sweepLocked(now time.Time) {
	cutoff := now.Add(-2 * l.window)
	for id, entry := range l.entries {
		if entry.windowStart.Before(cutoff) {
			delete(l.entries, id)
		}
	}
}
