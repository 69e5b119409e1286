package public

import (
	"context"
	"errors"

	"github.com/mocnhien/storefront/internal/cart"
	"github.com/mocnhien/storefront/internal/http/response"
	"github.com/mocnhien/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func cartView(c *cart.Cart) gin.H {
	return gin.H{
		"items":       c.Items(),
		"total_items": c.TotalItems(),
		"total_price": c.TotalPrice(),
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(c, response.CodeBadRequest, msgInvalidQuantity, nil)
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, msgProductNotFound, nil)
	case errors.Is(err, service.ErrProductInactive):
		respondError(c, response.CodeBadRequest, msgProductInactive, nil)
	case errors.Is(err, service.ErrCartItemNotFound):
		respondError(c, response.CodeNotFound, msgCartItemNotFound, nil)
	default:
		respondError(c, response.CodeInternal, msgInternal, err)
	}
}

// GetCart returns the session cart.
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	current, err := h.CartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, cartView(current))
}

// CartItemRequest adds or updates a cart line.
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// AddCartItem puts a product into the session cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, msgBadRequest, err)
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	current, err := h.CartService.AddItem(c.Request.Context(), sessionID, req.ProductID, quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(current))
}

// UpdateCartItem sets an absolute line quantity. Zero removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, msgBadRequest, err)
		return
	}
	current, err := h.CartService.SetQuantity(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(current))
}

// IncreaseCartItem bumps a line quantity by one.
func (h *Handler) IncreaseCartItem(c *gin.Context) {
	h.adjustCartItem(c, h.CartService.Increase)
}

// DecreaseCartItem lowers a line quantity by one, dropping it below 1.
func (h *Handler) DecreaseCartItem(c *gin.Context) {
	h.adjustCartItem(c, h.CartService.Decrease)
}

func (h *Handler) adjustCartItem(c *gin.Context, adjust func(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error)) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, msgBadRequest, err)
		return
	}
	current, err := adjust(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(current))
}

// RemoveCartItem drops a line from the session cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, msgBadRequest, err)
		return
	}
	current, err := h.CartService.RemoveItem(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(current))
}

// ClearCart empties the session cart.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), sessionID); err != nil {
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
