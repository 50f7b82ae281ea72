// internal/domain/order/entity.go
package order

import (
	"time"

	"gorm.io/gorm"
)

// Status represents the order status. Pre-orders are never charged online;
// they stay pending until the workshop confirms them with the customer.
type Status string

const (
	StatusPending      Status = "pending"
	StatusConfirmed    Status = "confirmed"
	StatusInProduction Status = "in_production"
	StatusDelivered    Status = "delivered"
	StatusCancelled    Status = "cancelled"
)

// Order represents a submitted pre-order
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	SessionID   string `gorm:"size:64;index" json:"-"` // Correlation only; no user binding
	UserID      *uint  `gorm:"index" json:"user_id,omitempty"`

	// Customer contact details
	CustomerName string `gorm:"not null;size:255" json:"customer_name"`
	Email        string `gorm:"not null;size:255" json:"email"`
	Phone        string `gorm:"not null;size:20" json:"phone"`
	Message      string `gorm:"type:text" json:"message"`

	Status Status `gorm:"not null;default:'pending'" json:"status"`

	// Amounts in cents
	SubtotalAmount int64 `gorm:"not null" json:"subtotal_amount"`
	TotalAmount    int64 `gorm:"not null" json:"total_amount"`

	// Optional delivery address
	ShippingAddress string `gorm:"size:255" json:"shipping_address"`
	ShippingCity    string `gorm:"size:100" json:"shipping_city"`
	ShippingState   string `gorm:"size:100" json:"shipping_state"`
	ShippingZipCode string `gorm:"size:20" json:"shipping_zip_code"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem is a frozen cart line: product identity, dimension label, quantity
// and the unit price at submission time.
type OrderItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrderID        uint      `gorm:"not null;index" json:"order_id"`
	ProductID      uint      `gorm:"not null;index" json:"product_id"`
	ProductName    string    `gorm:"not null;size:255" json:"product_name"`
	DimensionLabel string    `gorm:"size:255" json:"dimension_label,omitempty"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	UnitPrice      int64     `gorm:"not null" json:"unit_price"`   // In cents
	TotalPrice     int64     `gorm:"not null" json:"total_price"`  // Quantity * UnitPrice
	CreatedAt      time.Time `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// CanBeCancelled reports whether the order is still in a cancellable state
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}
