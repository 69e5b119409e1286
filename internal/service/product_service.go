package service

import (
	"strings"

	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/repository"
)

// ProductService handles public catalog reads.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListInput filters the public product listing.
type ListInput struct {
	Page       int
	PageSize   int
	CategoryID string
	Search     string
	PriceMin   *int64
	PriceMax   *int64
	Sort       string
}

// List returns active products matching the filter.
func (s *ProductService) List(input ListInput) ([]models.Product, int64, error) {
	pageSize := input.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return s.productRepo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     pageSize,
		CategoryID:   strings.TrimSpace(input.CategoryID),
		Search:       strings.TrimSpace(input.Search),
		PriceMin:     input.PriceMin,
		PriceMax:     input.PriceMax,
		Sort:         strings.TrimSpace(input.Sort),
		OnlyActive:   true,
		WithCategory: true,
	})
}

// GetBySlug fetches an active product by slug.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
