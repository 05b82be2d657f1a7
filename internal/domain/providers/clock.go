package providers

import "time"

// Clock supplies timestamps for record stamping. Now must be
// monotonically non-decreasing across calls.
type Clock interface {
	Now() time.Time
}
