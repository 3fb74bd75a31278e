// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as DB pings and
// graceful HTTP shutdown.
const DefaultTimeout = 30 * time.Second
