package repository

import (
	"fmt"
	"testing"

	"github.com/mocnhien/storefront/internal/constants"
	"github.com/mocnhien/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) *GormProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate product tables failed: %v", err)
	}
	return NewProductRepository(db)
}

func createFurnitureProduct(t *testing.T, repo *GormProductRepository, slug string, price int64, salePrice *int64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  1,
		Slug:        slug,
		NameJSON:    models.JSON{"vi": "Ghế gỗ óc chó", "en": "Walnut chair"},
		Material:    "walnut",
		PriceAmount: models.NewMoneyFromInt(price),
		IsActive:    active,
	}
	if salePrice != nil {
		sale := models.NewMoneyFromInt(*salePrice)
		product.SalePriceAmount = &sale
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListOnlyActive(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createFurnitureProduct(t, repo, "chair-active", 500000, nil, true)
	createFurnitureProduct(t, repo, "chair-hidden", 500000, nil, false)

	products, total, err := repo.List(ProductListFilter{OnlyActive: true, PageSize: 10, Page: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected 1 active product, got total=%d len=%d", total, len(products))
	}
	if products[0].Slug != "chair-active" {
		t.Fatalf("expected chair-active, got %s", products[0].Slug)
	}
}

func TestProductListPriceRangeUsesEffectivePrice(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	sale := int64(400000)
	createFurnitureProduct(t, repo, "chair-sale", 900000, &sale, true)
	createFurnitureProduct(t, repo, "chair-full", 900000, nil, true)

	max := int64(500000)
	products, _, err := repo.List(ProductListFilter{OnlyActive: true, PriceMax: &max, PageSize: 10, Page: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].Slug != "chair-sale" {
		t.Fatalf("expected only the discounted chair, got %+v", products)
	}
}

func TestProductListSortPriceAsc(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createFurnitureProduct(t, repo, "sort-expensive", 2000000, nil, true)
	createFurnitureProduct(t, repo, "sort-cheap", 300000, nil, true)

	products, _, err := repo.List(ProductListFilter{
		OnlyActive: true,
		Sort:       constants.ProductSortPriceAsc,
		PageSize:   10,
		Page:       1,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Slug != "sort-cheap" {
		t.Fatalf("expected cheapest first, got %s", products[0].Slug)
	}
}

func TestProductGetBySlugRespectsActiveFlag(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createFurnitureProduct(t, repo, "hidden-shelf", 700000, nil, false)

	got, err := repo.GetBySlug("hidden-shelf", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected inactive product hidden from active-only lookup")
	}

	got, err = repo.GetBySlug("hidden-shelf", false)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected inactive product visible without active filter")
	}
}

func TestProductSearchMatchesLocalizedName(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createFurnitureProduct(t, repo, "search-chair", 500000, nil, true)

	products, _, err := repo.List(ProductListFilter{OnlyActive: true, Search: "Walnut", PageSize: 10, Page: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected search hit on localized name, got %d", len(products))
	}
}
