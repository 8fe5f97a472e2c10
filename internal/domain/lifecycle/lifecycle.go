// Package lifecycle holds shared application lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 10 * time.Second
