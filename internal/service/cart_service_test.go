package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCartService(repository.NewProductRepository(db), newTestKV()), db
}

func TestCartServiceAddItemSnapshotsPrices(t *testing.T) {
	ctx := context.Background()
	svc, db := setupCartServiceTest(t)

	sale := models.NewMoneyFromInt(900000)
	product := &models.Product{
		CategoryID:      1,
		Slug:            "sofa-sale",
		NameJSON:        models.JSON{"vi": "Sofa gỗ tần bì", "en": "Ash sofa"},
		PriceAmount:     models.NewMoneyFromInt(1200000),
		SalePriceAmount: &sale,
		Images:          models.StringArray{"/images/sofa.jpg"},
		IsActive:        true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	got, err := svc.AddItem(ctx, "sess-1", product.ID, 2)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	line := got.Find(product.ID)
	if line == nil {
		t.Fatal("expected line item present")
	}
	if line.UnitPrice.String() != "1200000" {
		t.Fatalf("expected unit price 1200000, got %s", line.UnitPrice.String())
	}
	if line.SalePrice == nil || line.SalePrice.String() != "900000" {
		t.Fatalf("expected sale price snapshot 900000, got %+v", line.SalePrice)
	}
	if line.Image != "/images/sofa.jpg" {
		t.Fatalf("expected first image snapshot, got %s", line.Image)
	}
	if got.TotalPrice().String() != "1800000" {
		t.Fatalf("expected total 1800000, got %s", got.TotalPrice().String())
	}
}

func TestCartServiceAddItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupCartServiceTest(t)

	if _, err := svc.AddItem(ctx, "sess-1", 999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartServiceAddItemInactiveProduct(t *testing.T) {
	ctx := context.Background()
	svc, db := setupCartServiceTest(t)

	product := &models.Product{
		CategoryID:  1,
		Slug:        "retired-bench",
		NameJSON:    models.JSON{"vi": "Ghế băng"},
		PriceAmount: models.NewMoneyFromInt(400000),
		IsActive:    false,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	// gorm treats false as a zero value on insert, force it
	if err := db.Model(product).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	if _, err := svc.AddItem(ctx, "sess-1", product.ID, 1); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("expected ErrProductInactive, got %v", err)
	}
}

func TestCartServiceAddItemInvalidQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupCartServiceTest(t)

	if _, err := svc.AddItem(ctx, "sess-1", 1, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCartServiceIncreaseMissingLine(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupCartServiceTest(t)

	if _, err := svc.Increase(ctx, "sess-1", 42); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartServicePersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	svc, db := setupCartServiceTest(t)

	product := &models.Product{
		CategoryID:  1,
		Slug:        "tv-stand",
		NameJSON:    models.JSON{"vi": "Kệ tivi"},
		PriceAmount: models.NewMoneyFromInt(800000),
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if _, err := svc.AddItem(ctx, "sess-2", product.ID, 3); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	got, err := svc.Get(ctx, "sess-2")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if got.TotalItems() != 3 {
		t.Fatalf("expected 3 items after reload, got %d", got.TotalItems())
	}
}
