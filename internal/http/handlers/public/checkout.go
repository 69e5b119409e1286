package public

import (
	"errors"
	"strings"

	"github.com/mocnhien/storefront/internal/constants"
	"github.com/mocnhien/storefront/internal/http/response"
	"github.com/mocnhien/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest places an order from the session cart.
type CheckoutRequest struct {
	CustomerName    string                `json:"customer_name" binding:"required"`
	CustomerEmail   string                `json:"customer_email" binding:"required"`
	CustomerPhone   string                `json:"customer_phone" binding:"required"`
	ShippingAddress string                `json:"shipping_address" binding:"required"`
	ShippingCity    string                `json:"shipping_city"`
	ShippingMethod  string                `json:"shipping_method" binding:"required"`
	PaymentMethod   string                `json:"payment_method" binding:"required"`
	Note            string                `json:"note"`
	CaptchaPayload  CaptchaPayloadRequest `json:"captcha_payload"`
}

var checkoutErrorRules = []struct {
	target error
	code   int
	msg    string
}{
	{service.ErrCartEmpty, response.CodeBadRequest, msgCartEmpty},
	{service.ErrCustomerInfoRequired, response.CodeBadRequest, msgCustomerInfoRequired},
	{service.ErrInvalidEmail, response.CodeBadRequest, msgInvalidEmail},
	{service.ErrShippingAddressRequired, response.CodeBadRequest, msgShippingAddressRequired},
	{service.ErrInvalidShippingMethod, response.CodeBadRequest, msgInvalidShippingMethod},
	{service.ErrInvalidPaymentMethod, response.CodeBadRequest, msgInvalidPaymentMethod},
	{service.ErrCheckoutInFlight, response.CodeTooManyRequests, msgCheckoutInFlight},
}

// Checkout converts the session cart into a pending order.
func (h *Handler) Checkout(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, msgBadRequest, err)
		return
	}
	if !h.verifyCaptcha(c, service.CaptchaSceneCheckout, req.CaptchaPayload) {
		return
	}

	order, err := h.CheckoutService.CreateOrder(c.Request.Context(), service.CheckoutInput{
		SessionID:       sessionID,
		UserID:          optionalUserID(c),
		IdempotencyKey:  strings.TrimSpace(c.GetHeader(constants.IdempotencyKeyHeader)),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingMethod:  req.ShippingMethod,
		PaymentMethod:   req.PaymentMethod,
		Note:            req.Note,
		ClientIP:        c.ClientIP(),
	})
	if err != nil {
		for _, rule := range checkoutErrorRules {
			if errors.Is(err, rule.target) {
				respondError(c, rule.code, rule.msg, nil)
				return
			}
		}
		respondError(c, response.CodeInternal, msgCheckoutFailed, err)
		return
	}

	response.Success(c, order)
}
