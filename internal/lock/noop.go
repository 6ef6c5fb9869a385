package lock

import (
	"context"
	"sync"
	"time"
)

// localLocker is an in-process fallback used when Redis is not configured.
// It gives the same double-submit protection for a single instance.
type localLocker struct {
	mu   sync.Mutex
	held map[string]time.Time
}

func NewLocalLocker() Locker {
	return &localLocker{held: make(map[string]time.Time)}
}

func (l *localLocker) Acquire(ctx context.Context, key string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if expiry, ok := l.held[key]; ok && time.Now().Before(expiry) {
		return ErrAlreadyLocked
	}
	l.held[key] = time.Now().Add(ttl)
	return nil
}

func (l *localLocker) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}
