// internal/interfaces/http/handlers/inquiries.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/inquiry"
	"gorm.io/gorm"
)

// InquiryHandler handles inquiry and newsletter endpoints
type InquiryHandler struct {
	inquiryService *inquiry.Service
	config         *config.Config
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(db *gorm.DB, cfg *config.Config) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiry.NewService(db, cfg),
		config:         cfg,
	}
}

// CreateInquiry handles POST /inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req inquiry.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.inquiryService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to submit inquiry",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry submitted successfully",
		"data":    created,
	})
}

// SubscribeNewsletter handles POST /newsletter/subscribe
func (h *InquiryHandler) SubscribeNewsletter(c *gin.Context) {
	var req inquiry.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sub, err := h.inquiryService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, inquiry.ErrAlreadySubscribed) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Email is already subscribed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to subscribe",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Subscribed to newsletter successfully",
		"data":    sub,
	})
}
