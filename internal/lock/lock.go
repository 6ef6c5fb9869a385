package lock

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyLocked is returned when the key is held by another checkout.
var ErrAlreadyLocked = errors.New("lock already held")

// Locker is a short-lived mutual exclusion primitive keyed by owner. It
// guards checkout against double submission; the TTL bounds how long a
// crashed request can hold the lock.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}
