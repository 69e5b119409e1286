package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mocnhien/storefront/internal/http/response"
	"github.com/mocnhien/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts lists active products with filters and paging.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	input := service.ListInput{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: c.Query("category_id"),
		Search:     strings.TrimSpace(c.Query("search")),
		Sort:       c.Query("sort"),
	}
	if raw := strings.TrimSpace(c.Query("price_min")); raw != "" {
		if min, err := strconv.ParseInt(raw, 10, 64); err == nil && min >= 0 {
			input.PriceMin = &min
		}
	}
	if raw := strings.TrimSpace(c.Query("price_max")); raw != "" {
		if max, err := strconv.ParseInt(raw, 10, 64); err == nil && max >= 0 {
			input.PriceMax = &max
		}
	}

	products, total, err := h.ProductService.List(input)
	if err != nil {
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}

	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProductBySlug fetches an active product detail.
func (h *Handler) GetProductBySlug(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, msgProductNotFound, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, product)
}

// GetCategories lists all categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, categories)
}

// GetCategoryBySlug fetches a category detail.
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	category, err := h.CategoryService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, msgCategoryNotFound, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, category)
}
