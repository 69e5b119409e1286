package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/mocnhien/storefront/internal/cart"
	"github.com/mocnhien/storefront/internal/config"
	"github.com/mocnhien/storefront/internal/constants"
	"github.com/mocnhien/storefront/internal/logger"
	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/queue"
	"github.com/mocnhien/storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutLocker is the short-lived per-session slot guarding checkout
// re-entry. Implementations treat a held key as not acquired, not as an
// error.
type CheckoutLocker interface {
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// CheckoutService turns a session cart into a pending order.
type CheckoutService struct {
	orderRepo   repository.OrderRepository
	cartService *CartService
	queueClient *queue.Client
	locker      CheckoutLocker
	cfg         config.CheckoutConfig
}

// NewCheckoutService creates a checkout service. A nil locker disables
// the re-entry guard.
func NewCheckoutService(orderRepo repository.OrderRepository, cartService *CartService, queueClient *queue.Client, locker CheckoutLocker, cfg config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartService: cartService,
		queueClient: queueClient,
		locker:      locker,
		cfg:         cfg,
	}
}

// CheckoutInput carries everything needed to place an order.
type CheckoutInput struct {
	SessionID       string
	UserID          uint
	IdempotencyKey  string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	ShippingCity    string
	ShippingMethod  string
	PaymentMethod   string
	Note            string
	ClientIP        string
}

// CreateOrder validates the cart and customer details, writes the order
// and its item snapshots in one transaction, clears the cart and queues
// the confirmation email. A replayed idempotency key returns the order
// created by the first attempt.
func (s *CheckoutService) CreateOrder(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	idempotencyKey := strings.TrimSpace(input.IdempotencyKey)
	if idempotencyKey != "" {
		existing, err := s.orderRepo.GetByIdempotencyKey(idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	} else {
		idempotencyKey = uuid.NewString()
	}

	if s.locker != nil {
		acquired, err := s.locker.SetNX(ctx, checkoutLockKey(input.SessionID), idempotencyKey, s.lockTTL())
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, ErrCheckoutInFlight
		}
		// the request context may already be canceled by the time the
		// order is committed; the lock must be released regardless
		defer func() {
			_ = s.locker.Del(context.WithoutCancel(ctx), checkoutLockKey(input.SessionID))
		}()
	}

	store, err := s.cartService.LoadStore(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	currentCart := store.Cart()
	if currentCart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	if err := validateCustomerInfo(input); err != nil {
		return nil, err
	}

	shippingFee, err := s.resolveShippingFee(input.ShippingMethod)
	if err != nil {
		return nil, err
	}
	if !isPaymentMethodSupported(input.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	subtotal := currentCart.TotalPrice()
	discount := decimal.Zero
	tax := decimal.Zero
	total := subtotal.Decimal.Add(shippingFee.Decimal).Sub(discount).Add(tax)

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		IdempotencyKey:  idempotencyKey,
		UserID:          input.UserID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		ShippingCity:    strings.TrimSpace(input.ShippingCity),
		ShippingMethod:  input.ShippingMethod,
		PaymentMethod:   input.PaymentMethod,
		Status:          constants.OrderStatusPending,
		Currency:        constants.SiteCurrencyDefault,
		Subtotal:        subtotal,
		ShippingFee:     shippingFee,
		DiscountAmount:  models.NewMoneyFromDecimal(discount),
		TaxAmount:       models.NewMoneyFromDecimal(tax),
		TotalAmount:     models.NewMoneyFromDecimal(total),
		Note:            strings.TrimSpace(input.Note),
		ClientIP:        strings.TrimSpace(input.ClientIP),
	}

	items := buildOrderItems(currentCart.Items())

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	})
	if err != nil {
		// A concurrent attempt with the same key may have won the race;
		// the unique index turns that into a replay.
		if existing, lookupErr := s.orderRepo.GetByIdempotencyKey(idempotencyKey); lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	order.Items = items

	if clearErr := store.Clear(ctx); clearErr != nil {
		logger.Warnw("checkout_cart_clear_failed",
			"order_no", order.OrderNo,
			"error", clearErr,
		)
	}

	if s.queueClient != nil {
		if enqueueErr := s.queueClient.EnqueueOrderConfirmEmail(queue.OrderConfirmEmailPayload{OrderID: order.ID}); enqueueErr != nil {
			logger.Warnw("checkout_confirm_email_enqueue_failed",
				"order_no", order.OrderNo,
				"error", enqueueErr,
			)
		}
	}

	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"total", order.TotalAmount.String(),
		"items", len(items),
	)
	return order, nil
}

func validateCustomerInfo(input CheckoutInput) error {
	name := strings.TrimSpace(input.CustomerName)
	email := strings.TrimSpace(input.CustomerEmail)
	phone := strings.TrimSpace(input.CustomerPhone)
	if name == "" || email == "" || phone == "" {
		return ErrCustomerInfoRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		return ErrShippingAddressRequired
	}
	return nil
}

func (s *CheckoutService) resolveShippingFee(method string) (models.Money, error) {
	switch method {
	case constants.ShippingMethodStandard:
		return models.NewMoneyFromInt(s.cfg.ShippingStandardFee), nil
	case constants.ShippingMethodExpress:
		return models.NewMoneyFromInt(s.cfg.ShippingExpressFee), nil
	default:
		return models.Money{}, ErrInvalidShippingMethod
	}
}

func isPaymentMethodSupported(method string) bool {
	switch method {
	case constants.PaymentMethodCOD, constants.PaymentMethodCard, constants.PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

func (s *CheckoutService) lockTTL() time.Duration {
	seconds := s.cfg.LockTTLSeconds
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

func checkoutLockKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", constants.CacheKeyCheckoutLock, sessionID)
}

func buildOrderItems(lines []cart.LineItem) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID:  line.ProductID,
			NameJSON:   line.Name,
			Image:      line.Image,
			UnitPrice:  line.EffectivePrice(),
			Quantity:   line.Quantity,
			TotalPrice: line.Subtotal(),
		})
	}
	return items
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("MN%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
