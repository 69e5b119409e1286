package service

import (
	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/repository"
)

// CategoryService handles public category reads.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories ordered by sort weight.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// GetBySlug fetches a category by slug.
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}
