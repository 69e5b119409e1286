package constants

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// Shipping method constants.
const (
	ShippingMethodStandard = "standard"
	ShippingMethodExpress  = "express"
)

// Payment method constants.
const (
	PaymentMethodCOD          = "cod"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Product sort keys accepted by the public listing endpoint.
const (
	ProductSortNewest    = "newest"
	ProductSortPriceAsc  = "price_asc"
	ProductSortPriceDesc = "price_desc"
)

// User status constants.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Captcha provider constants.
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// Queue constants.
const (
	QueueDefault          = "default"
	TaskOrderConfirmEmail = "order:confirm_email"
)

// Cart session and checkout idempotency constants.
const (
	CartSessionCookieName = "cart_session"
	CartSessionHeaderName = "X-Cart-Session"
	IdempotencyKeyHeader  = "X-Idempotency-Key"
)

// Cache key prefixes (combined with the configured Redis prefix).
const (
	CacheKeyCartPrefix   = "cart"
	CacheKeyCheckoutLock = "checkout:lock"
	RedisPrefixDefault   = "mn"
)

// Site currency. Amounts are whole Vietnamese dong.
const SiteCurrencyDefault = "VND"
