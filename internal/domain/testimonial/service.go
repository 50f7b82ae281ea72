// internal/domain/testimonial/service.go
package testimonial

import (
	"fmt"

	"github.com/teromix/storefront-api/internal/config"
	"gorm.io/gorm"
)

// Service handles testimonial business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new testimonial service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateRequest represents a testimonial submission
type CreateRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Location string `json:"location"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required,min=10"`
	ImageURL string `json:"image_url"`
}

// GetApproved retrieves approved testimonials, newest first
func (s *Service) GetApproved() ([]Testimonial, error) {
	var testimonials []Testimonial
	err := s.db.Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve testimonials: %w", err)
	}

	return testimonials, nil
}

// Create stores a new testimonial. It stays hidden until approved.
func (s *Service) Create(req *CreateRequest) (*Testimonial, error) {
	t := Testimonial{
		Name:       req.Name,
		Location:   req.Location,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ImageURL:   req.ImageURL,
		IsApproved: false,
	}

	if err := s.db.Create(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	return &t, nil
}
