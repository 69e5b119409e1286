package repository

import (
	"fmt"
	"testing"

	"github.com/mocnhien/storefront/internal/constants"
	"github.com/mocnhien/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func buildTestOrder(orderNo, idempotencyKey string) *models.Order {
	return &models.Order{
		OrderNo:         orderNo,
		IdempotencyKey:  idempotencyKey,
		CustomerName:    "Nguyễn Văn An",
		CustomerEmail:   "an@example.com",
		CustomerPhone:   "0901234567",
		ShippingAddress: "12 Lý Thường Kiệt",
		ShippingCity:    "Hà Nội",
		ShippingMethod:  constants.ShippingMethodStandard,
		PaymentMethod:   constants.PaymentMethodCOD,
		Status:          constants.OrderStatusPending,
		Currency:        constants.SiteCurrencyDefault,
		Subtotal:        models.NewMoneyFromInt(200000),
		ShippingFee:     models.NewMoneyFromInt(30000),
		TotalAmount:     models.NewMoneyFromInt(230000),
	}
}

func TestOrderCreateWithItems(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order := buildTestOrder("MN1001", "idem-create-1")
	items := []models.OrderItem{
		{
			ProductID:  1,
			NameJSON:   models.JSON{"vi": "Bàn ăn gỗ sồi", "en": "Oak dining table"},
			UnitPrice:  models.NewMoneyFromInt(100000),
			Quantity:   2,
			TotalPrice: models.NewMoneyFromInt(200000),
		},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("expected order id assigned")
	}

	got, err := repo.GetByOrderNo("MN1001")
	if err != nil {
		t.Fatalf("get by order no failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected order found")
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got.Items))
	}
	if got.Items[0].OrderID != order.ID {
		t.Fatalf("expected item bound to order %d, got %d", order.ID, got.Items[0].OrderID)
	}
}

func TestOrderTransactionRollbackLeavesNoRows(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	err := repo.Transaction(func(tx *gorm.DB) error {
		txRepo := repo.WithTx(tx)
		order := buildTestOrder("MN1002", "idem-rollback-1")
		if err := txRepo.Create(order, nil); err != nil {
			return err
		}
		// duplicate idempotency key forces the second insert to fail
		return txRepo.Create(buildTestOrder("MN1003", "idem-rollback-1"), nil)
	})
	if err == nil {
		t.Fatal("expected transaction to fail")
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to leave no orders, got %d", count)
	}
}

func TestOrderGetByOrderNoAndContact(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order := buildTestOrder("MN1004", "idem-contact-1")
	if err := repo.Create(order, nil); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	got, err := repo.GetByOrderNoAndContact("MN1004", "an@example.com", "0901234567")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected order found with matching contact")
	}

	miss, err := repo.GetByOrderNoAndContact("MN1004", "an@example.com", "0000000000")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if miss != nil {
		t.Fatal("expected nil for wrong phone")
	}
}

func TestOrderGetByIdempotencyKey(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order := buildTestOrder("MN1005", "idem-replay-1")
	if err := repo.Create(order, nil); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	got, err := repo.GetByIdempotencyKey("idem-replay-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got == nil || got.OrderNo != "MN1005" {
		t.Fatalf("expected replayed order MN1005, got %+v", got)
	}

	miss, err := repo.GetByIdempotencyKey("idem-unknown")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if miss != nil {
		t.Fatal("expected nil for unknown key")
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order := buildTestOrder("MN1006", "idem-status-1")
	if err := repo.Create(order, nil); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repo.UpdateStatus(order.ID, constants.OrderStatusConfirmed, nil); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", got.Status)
	}
}
