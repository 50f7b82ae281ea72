// internal/domain/inquiry/entity.go
package inquiry

import (
	"time"
)

// Inquiry kinds
const (
	KindCustomOrder = "custom_order"
	KindContact     = "contact"
)

// Inquiry represents a custom-order or contact form submission
type Inquiry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Kind      string    `json:"kind" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	WoodType  string    `json:"wood_type"`
	Budget    string    `json:"budget"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewsletterSubscriber represents a newsletter signup
type NewsletterSubscriber struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
