// Package cache provides a TTL cache with an explicit clock: staleness is
// an input to GetOrRefresh, never ambient instance state, which keeps
// expiry behavior testable without sleeping.
package cache

import (
	"context"
	"sync"
	"time"
)

// Loader produces a fresh value when the cached one is stale or missing.
type Loader[T any] func(ctx context.Context) (T, error)

type Cached[T any] struct {
	mu        sync.Mutex
	value     T
	loadedAt  time.Time
	hasValue  bool
	ttl       time.Duration
	loadFresh Loader[T]
}

func New[T any](ttl time.Duration, load Loader[T]) *Cached[T] {
	return &Cached[T]{ttl: ttl, loadFresh: load}
}

// GetOrRefresh returns the cached value if it is still fresh at now,
// otherwise reloads. A failed reload keeps any previously cached value
// untouched and returns the error.
func (c *Cached[T]) GetOrRefresh(ctx context.Context, now time.Time) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasValue && now.Sub(c.loadedAt) < c.ttl {
		return c.value, nil
	}
	return c.refreshLocked(ctx, now)
}

// Refresh forces a reload regardless of freshness.
func (c *Cached[T]) Refresh(ctx context.Context, now time.Time) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx, now)
}

// Invalidate drops the cached value so the next read reloads.
func (c *Cached[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.hasValue = false
}

func (c *Cached[T]) refreshLocked(ctx context.Context, now time.Time) (T, error) {
	v, err := c.loadFresh(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.value = v
	c.loadedAt = now
	c.hasValue = true
	return v, nil
}
