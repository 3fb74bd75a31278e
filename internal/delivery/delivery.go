// Package delivery defines the contract every transport surface fulfils.
package delivery

import "context"

// Delivery is a servable transport (HTTP today). Serve blocks until the
// server stops; shutdown is handled through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
