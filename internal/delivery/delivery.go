// Package delivery defines the contract every transport (HTTP, workers) satisfies.
package delivery

import "context"

// Delivery is a long-running transport started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
