// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/domain/cart"
	"github.com/teromix/storefront-api/internal/pkg/email"
	"gorm.io/gorm"
)

// ErrEmptyCart is returned when a submission is attempted with no cart lines.
// It is checked before any side effect, including the database transaction.
var ErrEmptyCart = errors.New("order: cart is empty")

// ErrNotFound is returned when an order does not exist
var ErrNotFound = errors.New("order: not found")

// Service handles pre-order business logic
type Service struct {
	db           *gorm.DB
	cartService  *cart.Service
	emailService *email.Service
	config       *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cartStorage cart.Storage, cfg *config.Config) *Service {
	return &Service{
		db:           db,
		cartService:  cart.NewService(db, cartStorage, cfg),
		emailService: email.NewService(cfg),
		config:       cfg,
	}
}

// CustomerInfo carries the contact fields of a submission
type CustomerInfo struct {
	FullName string `json:"full_name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=7"`
	Message  string `json:"message"`
}

// ShippingInfo carries the optional delivery address
type ShippingInfo struct {
	Address string `json:"address" binding:"required,min=5"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
}

// SubmitRequest represents a pre-order submission. Items and totals are not
// part of the payload: the session cart is the snapshot, and the total is
// recomputed server-side from effective unit prices.
type SubmitRequest struct {
	CustomerInfo CustomerInfo  `json:"customer_info" binding:"required"`
	Shipping     *ShippingInfo `json:"shipping,omitempty"`
}

// ListRequest represents order list query parameters
type ListRequest struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// Submit turns the session cart into a persisted pre-order. The cart is
// cleared only after the transaction commits; any earlier failure leaves it
// untouched so the customer can retry.
func (s *Service) Submit(ctx context.Context, sessionID string, req *SubmitRequest) (*Order, error) {
	sessionCart, err := s.cartService.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	if sessionCart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	subtotal := sessionCart.Total()

	newOrder := Order{
		SessionID:      sessionID,
		CustomerName:   req.CustomerInfo.FullName,
		Email:          req.CustomerInfo.Email,
		Phone:          req.CustomerInfo.Phone,
		Message:        req.CustomerInfo.Message,
		Status:         StatusPending,
		SubtotalAmount: subtotal,
		TotalAmount:    subtotal, // No tax/shipping/payment at pre-order time
	}

	if req.Shipping != nil {
		newOrder.ShippingAddress = req.Shipping.Address
		newOrder.ShippingCity = req.Shipping.City
		newOrder.ShippingState = req.Shipping.State
		newOrder.ShippingZipCode = req.Shipping.ZipCode
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newOrder).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		newOrder.OrderNumber = s.generateOrderNumber(newOrder.ID)
		if err := tx.Model(&newOrder).Update("order_number", newOrder.OrderNumber).Error; err != nil {
			return fmt.Errorf("failed to update order number: %w", err)
		}

		for _, line := range sessionCart.Lines {
			orderItem := OrderItem{
				OrderID:        newOrder.ID,
				ProductID:      line.Product.ProductID,
				ProductName:    line.Product.Name,
				DimensionLabel: line.Product.DimensionLabel,
				Quantity:       line.Quantity,
				UnitPrice:      line.Product.EffectiveUnitPrice(),
				TotalPrice:     line.Subtotal(),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			newOrder.Items = append(newOrder.Items, orderItem)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notify customer and admin. Delivery failures are logged, not fatal:
	// the order is already persisted.
	emailData := s.buildOrderEmailData(&newOrder)
	if err := s.emailService.SendOrderConfirmation(ctx, emailData); err != nil {
		logrus.WithField("order_number", newOrder.OrderNumber).
			WithError(err).Warn("Failed to send order confirmation email")
	}
	if err := s.emailService.SendOrderNotification(ctx, emailData); err != nil {
		logrus.WithField("order_number", newOrder.OrderNumber).
			WithError(err).Warn("Failed to send order notification email")
	}

	// Clear the cart only after the order is durably stored
	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		logrus.WithField("session_id", sessionID).
			WithError(err).Warn("Failed to clear cart after checkout")
	}

	return &newOrder, nil
}

// GetOrders retrieves orders, newest first
func (s *Service) GetOrders(req *ListRequest) ([]Order, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	var orders []Order
	err := s.db.Preload("Items").
		Order("created_at DESC").
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	return orders, nil
}

// GetOrder retrieves a single order with its items
func (s *Service) GetOrder(id uint) (*Order, error) {
	var o Order
	result := s.db.Preload("Items").Where("id = ?", id).First(&o)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	return &o, nil
}

func (s *Service) generateOrderNumber(orderID uint) string {
	// Format: TMX-YYYYMMDD-XXXXX
	return fmt.Sprintf("TMX-%s-%05d", time.Now().Format("20060102"), orderID)
}

func (s *Service) buildOrderEmailData(o *Order) email.OrderEmailData {
	items := make([]email.OrderItemData, len(o.Items))
	for i, item := range o.Items {
		items[i] = email.OrderItemData{
			ProductName:    item.ProductName,
			DimensionLabel: item.DimensionLabel,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			TotalPrice:     item.TotalPrice,
		}
	}

	return email.OrderEmailData{
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.Email,
		CustomerPhone:   o.Phone,
		CustomerMessage: o.Message,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		SubmittedAt:     o.CreatedAt,
	}
}
