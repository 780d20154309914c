// Package delivery declares the entry points that expose the use cases to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the fx application, such as
// the HTTP query API or the sync queue consumer.
type Delivery interface {
	Serve(ctx context.Context) error
}
