// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a long-running server started by the fx app.
type Delivery interface {
	// Serve blocks until the server stops. Shutdown is driven by fx lifecycle hooks.
	Serve(ctx context.Context) error
}
