// Package lifecycle holds shared constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as DB pings and server shutdown.
const DefaultTimeout = 10 * time.Second
