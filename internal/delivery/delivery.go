// Package delivery defines the contract every serving surface fulfills.
package delivery

import "context"

// Delivery is a long-running serving surface started by the application
// entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
