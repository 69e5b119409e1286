package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/mocnhien/storefront/internal/constants"
)

// CartKV is the Redis-backed slot a session cart persists into. It
// satisfies the cart store's KV interface. When the cache is disabled
// carts live in memory for the request only.
type CartKV struct {
	ttl time.Duration
}

// NewCartKV creates a cart KV with the given snapshot lifetime.
func NewCartKV(ttl time.Duration) *CartKV {
	return &CartKV{ttl: ttl}
}

// CartKey builds the slot key for a cart session.
func CartKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", constants.CacheKeyCartPrefix, sessionID)
}

// Get reads a cart snapshot.
func (kv *CartKV) Get(ctx context.Context, key string) (string, bool, error) {
	return GetString(ctx, key)
}

// Set writes a cart snapshot, refreshing its lifetime.
func (kv *CartKV) Set(ctx context.Context, key, value string) error {
	return SetString(ctx, key, value, kv.ttl)
}

// Del removes a cart snapshot.
func (kv *CartKV) Del(ctx context.Context, key string) error {
	return Del(ctx, key)
}
