package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mocnhien/storefront/internal/constants"
	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, repository.OrderRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	repo := repository.NewOrderRepository(db)
	return NewOrderService(repo), repo
}

func createServiceOrder(t *testing.T, repo repository.OrderRepository, orderNo, status string, userID uint) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:         orderNo,
		IdempotencyKey:  "idem-" + orderNo,
		UserID:          userID,
		CustomerName:    "Lê Văn Bình",
		CustomerEmail:   "binh@example.com",
		CustomerPhone:   "0987654321",
		ShippingAddress: "3 Trần Phú",
		ShippingMethod:  constants.ShippingMethodStandard,
		PaymentMethod:   constants.PaymentMethodBankTransfer,
		Status:          status,
		Currency:        constants.SiteCurrencyDefault,
		TotalAmount:     models.NewMoneyFromInt(500000),
	}
	if err := repo.Create(order, nil); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusConfirmed, true},
		{constants.OrderStatusPending, constants.OrderStatusCanceled, true},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, false},
		{constants.OrderStatusConfirmed, constants.OrderStatusShipping, true},
		{constants.OrderStatusConfirmed, constants.OrderStatusCanceled, false},
		{constants.OrderStatusShipping, constants.OrderStatusDelivered, true},
		{constants.OrderStatusDelivered, constants.OrderStatusCompleted, true},
		{constants.OrderStatusCompleted, constants.OrderStatusPending, false},
		{constants.OrderStatusCanceled, constants.OrderStatusPending, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestGuestLookup(t *testing.T) {
	svc, repo := setupOrderServiceTest(t)
	createServiceOrder(t, repo, "MN2001", constants.OrderStatusPending, 0)

	order, err := svc.GuestLookup("MN2001", "binh@example.com", "0987654321")
	if err != nil {
		t.Fatalf("guest lookup failed: %v", err)
	}
	if order.OrderNo != "MN2001" {
		t.Fatalf("expected MN2001, got %s", order.OrderNo)
	}

	if _, err := svc.GuestLookup("MN2001", "binh@example.com", "0000000000"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for wrong phone, got %v", err)
	}
	if _, err := svc.GuestLookup("", "binh@example.com", "0987654321"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for blank order no, got %v", err)
	}
}

func TestCancelPendingOrder(t *testing.T) {
	svc, repo := setupOrderServiceTest(t)
	order := createServiceOrder(t, repo, "MN2002", constants.OrderStatusPending, 0)

	canceled, err := svc.Cancel(order)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled {
		t.Fatalf("expected canceled status, got %s", canceled.Status)
	}
	if canceled.CanceledAt == nil {
		t.Fatal("expected canceled_at set")
	}

	stored, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusCanceled {
		t.Fatalf("expected stored status canceled, got %s", stored.Status)
	}
}

func TestCancelShippedOrderRejected(t *testing.T) {
	svc, repo := setupOrderServiceTest(t)
	order := createServiceOrder(t, repo, "MN2003", constants.OrderStatusShipping, 0)

	if _, err := svc.Cancel(order); !errors.Is(err, ErrOrderNotCancelable) {
		t.Fatalf("expected ErrOrderNotCancelable, got %v", err)
	}
}

func TestUpdateStatusEnforcesTransitions(t *testing.T) {
	svc, repo := setupOrderServiceTest(t)
	order := createServiceOrder(t, repo, "MN2004", constants.OrderStatusPending, 0)

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if updated.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusCompleted); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestListForUser(t *testing.T) {
	svc, repo := setupOrderServiceTest(t)
	createServiceOrder(t, repo, "MN2005", constants.OrderStatusPending, 7)
	createServiceOrder(t, repo, "MN2006", constants.OrderStatusConfirmed, 7)
	createServiceOrder(t, repo, "MN2007", constants.OrderStatusPending, 8)

	orders, total, err := svc.ListForUser(7, "", 1, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected 2 orders for user 7, got total=%d len=%d", total, len(orders))
	}

	orders, total, err = svc.ListForUser(7, constants.OrderStatusConfirmed, 1, 20)
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if total != 1 || orders[0].OrderNo != "MN2006" {
		t.Fatalf("expected only MN2006, got total=%d", total)
	}
}
