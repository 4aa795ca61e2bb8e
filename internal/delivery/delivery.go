// Package delivery defines the inbound surfaces of the application.
package delivery

import "context"

// Delivery is a long-running inbound surface (HTTP server, worker).
// Serve blocks until the surface stops or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
