package cache

import (
	"context"
	"time"
)

// Locker exposes the Redis SetNX/Del helpers as a lock slot. When the
// cache is disabled every acquisition succeeds, matching the helpers.
type Locker struct{}

// NewLocker creates a Redis-backed locker.
func NewLocker() *Locker {
	return &Locker{}
}

// SetNX acquires the slot when the key is absent.
func (*Locker) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return SetNX(ctx, key, value, ttl)
}

// Del releases the slot.
func (*Locker) Del(ctx context.Context, key string) error {
	return Del(ctx, key)
}
