// internal/domain/testimonial/entity.go
package testimonial

import (
	"time"
)

// Testimonial represents a customer review shown on the storefront.
// Submissions start unapproved and only appear publicly after moderation.
type Testimonial struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Location   string    `json:"location"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:text;not null"`
	ImageURL   string    `json:"image_url"`
	IsApproved bool      `json:"is_approved" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
