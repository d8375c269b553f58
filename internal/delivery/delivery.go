// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a transport that serves the application until its context or
// the process lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
