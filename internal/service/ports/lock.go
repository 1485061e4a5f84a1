package ports

import (
	"context"
	"time"
)

// Locker is a named mutual exclusion honored across service instances.
type Locker interface {
	// Acquire blocks up to timeout. On success the returned release func must be
	// called on every exit path; on timeout it returns domain.ErrTooHighDemand.
	Acquire(ctx context.Context, key string, timeout time.Duration) (func(), error)
}
