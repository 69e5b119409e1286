package service

import (
	"context"

	"github.com/mocnhien/storefront/internal/cache"
	"github.com/mocnhien/storefront/internal/cart"
	"github.com/mocnhien/storefront/internal/repository"
)

// CartService manages session carts. Line items snapshot the product's
// current prices when added; the cart itself stays authoritative for
// quantities and totals until checkout.
type CartService struct {
	productRepo repository.ProductRepository
	kv          cart.KV
}

// NewCartService creates a cart service.
func NewCartService(productRepo repository.ProductRepository, kv cart.KV) *CartService {
	return &CartService{
		productRepo: productRepo,
		kv:          kv,
	}
}

// LoadStore loads the persisted cart for a session.
func (s *CartService) LoadStore(ctx context.Context, sessionID string) (*cart.Store, error) {
	store := cart.NewStore(s.kv, cache.CartKey(sessionID))
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// Get returns the current cart for a session.
func (s *CartService) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	store, err := s.LoadStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.Cart(), nil
}

// AddItem adds a product to the session cart.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint, quantity int) (*cart.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	store, err := s.LoadStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := cart.LineItem{
		ProductID: product.ID,
		Slug:      product.Slug,
		Name:      product.NameJSON,
		UnitPrice: product.PriceAmount,
		SalePrice: product.SalePriceAmount,
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}
	if err := store.Add(ctx, item, quantity); err != nil {
		return nil, err
	}
	return store.Cart(), nil
}

// SetQuantity sets an absolute line quantity for a session cart.
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*cart.Cart, error) {
	store, err := s.LoadStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := store.SetQuantity(ctx, productID, quantity); err != nil {
		return nil, err
	}
	return store.Cart(), nil
}

// Increase bumps a line quantity by one.
func (s *CartService) Increase(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	store, err := s.LoadStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if store.Cart().Find(productID) == nil {
		return nil, ErrCartItemNotFound
	}
	if err := store.Increase(ctx, productID); err != nil {
		return nil, err
	}
	return store.Cart(), nil
}

// Decrease lowers a line quantity by one, removing it below 1.
func (s *CartService) Decrease(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	store, err := s.LoadStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if store.Cart().Find(productID) == nil {
		return nil, ErrCartItemNotFound
	}
	if err := store.Decrease(ctx, productID); err != nil {
		return nil, err
	}
	return store.Cart(), nil
}

// RemoveItem drops a line from the session cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	store, err := s.LoadStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := store.Remove(ctx, productID); err != nil {
		return nil, err
	}
	return store.Cart(), nil
}

// Clear empties the session cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	store, err := s.LoadStore(ctx, sessionID)
	if err != nil {
		return err
	}
	return store.Clear(ctx)
}
