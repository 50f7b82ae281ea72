// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/teromix/storefront-api/internal/config"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a category or product does not exist
var ErrNotFound = errors.New("catalog: record not found")

// Service handles catalog read operations
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
	Category   string `form:"category"` // category slug
	CategoryID uint   `form:"category_id"`
	Search     string `form:"q"`
	IsFeatured *bool  `form:"featured"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc"`
}

// ProductListResponse represents a product page with pagination info
type ProductListResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// CategoryWithProducts bundles a category with its products
type CategoryWithProducts struct {
	Category Category  `json:"category"`
	Products []Product `json:"products"`
}

// GetCategories retrieves all categories in display order
func (s *Service) GetCategories() ([]Category, error) {
	var categories []Category

	err := s.db.Model(&Category{}).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	return categories, nil
}

// GetCategoryBySlug retrieves a category together with its products
func (s *Service) GetCategoryBySlug(slug string) (*CategoryWithProducts, error) {
	var category Category
	result := s.db.Where("slug = ?", slug).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", result.Error)
	}

	var products []Product
	err := s.db.Preload("Dimensions", dimensionOrder).
		Where("category_id = ?", category.ID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category products: %w", err)
	}

	return &CategoryWithProducts{
		Category: category,
		Products: products,
	}, nil
}

// GetProducts retrieves products with filtering and pagination
func (s *Service) GetProducts(req *ProductListRequest) (*ProductListResponse, error) {
	var products []Product
	var total int64

	query := s.db.Model(&Product{}).
		Preload("Category").
		Preload("Dimensions", dimensionOrder)

	// Apply filters
	if req.Category != "" {
		var category Category
		if err := s.db.Where("slug = ?", req.Category).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to resolve category filter: %w", err)
		}
		query = query.Where("category_id = ?", category.ID)
	} else if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}

	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(wood_type) LIKE ?",
			search, search, search)
	}

	if req.IsFeatured != nil {
		query = query.Where("is_featured = ?", *req.IsFeatured)
	}

	// Count total records
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting and pagination
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	offset := (req.Page - 1) * req.Limit
	err := query.Order(s.buildOrderClause(req.SortBy, req.SortOrder)).
		Offset(offset).
		Limit(req.Limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &ProductListResponse{
		Products: products,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetFeaturedProducts retrieves products flagged for the landing page
func (s *Service) GetFeaturedProducts(limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 8
	}

	var products []Product
	err := s.db.Preload("Category").
		Preload("Dimensions", dimensionOrder).
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured products: %w", err)
	}

	return products, nil
}

// GetProductBySlug retrieves a single product by its slug
func (s *Service) GetProductBySlug(slug string) (*Product, error) {
	var product Product
	result := s.db.Preload("Category").
		Preload("Dimensions", dimensionOrder).
		Where("slug = ?", slug).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// GetProductByID retrieves a single product by id, dimensions included
func (s *Service) GetProductByID(id uint) (*Product, error) {
	var product Product
	result := s.db.Preload("Dimensions", dimensionOrder).
		Where("id = ?", id).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// dimensionOrder keeps dimension slices in a stable, index-addressable order
func dimensionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

// buildOrderClause builds a safe ORDER BY clause from query parameters
func (s *Service) buildOrderClause(sortBy, sortOrder string) string {
	allowedSortFields := map[string]bool{
		"created_at": true,
		"name":       true,
		"price":      true,
		"rating":     true,
	}

	if !allowedSortFields[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
