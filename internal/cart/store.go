package cart

import (
	"context"
	"encoding/json"

	"github.com/mocnhien/storefront/internal/logger"
)

// KV is the durable string slot a cart persists into. Implementations
// treat a missing key as absent, not as an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, key string) error
}

type snapshot struct {
	Items []LineItem `json:"items"`
}

// Store wraps a Cart with persistence into one fixed KV key.
//
// Mutations made before Load has run keep the cart in memory only; once
// loaded, every mutation writes the serialized cart back to the slot.
type Store struct {
	kv     KV
	key    string
	loaded bool
	cart   Cart
}

// NewStore creates a store bound to a KV slot key.
func NewStore(kv KV, key string) *Store {
	return &Store{kv: kv, key: key}
}

// Load reads the persisted cart. A malformed payload is discarded as an
// empty cart and logged; it is never surfaced to the caller.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return err
	}
	if ok && raw != "" {
		var snap snapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			logger.Warnw("cart_snapshot_malformed",
				"key", s.key,
				"error", err,
			)
			s.cart.Clear()
		} else {
			s.cart.items = snap.Items
		}
	}
	s.loaded = true
	return nil
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Cart returns a read view of the current cart.
func (s *Store) Cart() *Cart {
	return &s.cart
}

// Add merges an item and persists.
func (s *Store) Add(ctx context.Context, item LineItem, quantity int) error {
	s.cart.Add(item, quantity)
	return s.persist(ctx)
}

// Remove drops a line and persists.
func (s *Store) Remove(ctx context.Context, productID uint) error {
	s.cart.Remove(productID)
	return s.persist(ctx)
}

// SetQuantity sets an absolute quantity and persists.
func (s *Store) SetQuantity(ctx context.Context, productID uint, quantity int) error {
	s.cart.SetQuantity(productID, quantity)
	return s.persist(ctx)
}

// Increase bumps a line by one and persists.
func (s *Store) Increase(ctx context.Context, productID uint) error {
	s.cart.Increase(productID)
	return s.persist(ctx)
}

// Decrease lowers a line by one and persists.
func (s *Store) Decrease(ctx context.Context, productID uint) error {
	s.cart.Decrease(productID)
	return s.persist(ctx)
}

// Clear empties the cart and persists.
func (s *Store) Clear(ctx context.Context) error {
	s.cart.Clear()
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	if !s.loaded {
		return nil
	}
	if s.cart.IsEmpty() {
		return s.kv.Del(ctx, s.key)
	}
	raw, err := json.Marshal(snapshot{Items: s.cart.items})
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, string(raw))
}
