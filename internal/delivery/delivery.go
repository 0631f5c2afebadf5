// Package delivery defines the contract every transport (HTTP, worker)
// fulfills so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is one serving surface of the process.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
