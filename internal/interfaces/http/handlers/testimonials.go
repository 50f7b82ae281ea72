// internal/interfaces/http/handlers/testimonials.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/testimonial"
	"gorm.io/gorm"
)

// TestimonialHandler handles testimonial endpoints
type TestimonialHandler struct {
	testimonialService *testimonial.Service
	config             *config.Config
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(db *gorm.DB, cfg *config.Config) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonial.NewService(db, cfg),
		config:             cfg,
	}
}

// GetTestimonials handles GET /testimonials. Only approved entries are returned.
func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetApproved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve testimonials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Testimonials retrieved successfully",
		"data":    testimonials,
	})
}

// CreateTestimonial handles POST /testimonials
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req testimonial.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.testimonialService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to submit testimonial",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Testimonial submitted for review",
		"data":    created,
	})
}
