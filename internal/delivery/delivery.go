// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a transport that serves requests until the context is
// cancelled or the listener fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
