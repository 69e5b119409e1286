package service

import "errors"

// Sentinel errors surfaced through the HTTP error mapping. The message
// strings shown to customers live in the handler layer.
var (
	ErrNotFound                  = errors.New("record not found")
	ErrCartEmpty                 = errors.New("cart is empty")
	ErrCartItemNotFound          = errors.New("cart item not found")
	ErrProductNotFound           = errors.New("product not found")
	ErrProductInactive           = errors.New("product not available")
	ErrInvalidQuantity           = errors.New("invalid quantity")
	ErrCustomerInfoRequired      = errors.New("customer info required")
	ErrShippingAddressRequired   = errors.New("shipping address required")
	ErrInvalidShippingMethod     = errors.New("invalid shipping method")
	ErrInvalidPaymentMethod      = errors.New("invalid payment method")
	ErrCheckoutInFlight          = errors.New("checkout already in flight")
	ErrOrderNotFound             = errors.New("order not found")
	ErrOrderNotCancelable        = errors.New("order can no longer be canceled")
	ErrInvalidStatusTransition   = errors.New("invalid order status transition")
	ErrInvalidEmail              = errors.New("invalid email")
	ErrEmailExists               = errors.New("email already registered")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrUserDisabled              = errors.New("user disabled")
	ErrPasswordTooShort          = errors.New("password too short")
	ErrCaptchaRequired           = errors.New("captcha required")
	ErrCaptchaInvalid            = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid      = errors.New("captcha config invalid")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)
