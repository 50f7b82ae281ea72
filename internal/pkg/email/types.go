// internal/pkg/email/types.go
package email

import (
	"time"
)

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeOrderConfirmation EmailType = "order_confirmation"
	EmailTypeOrderNotification EmailType = "order_notification"
	EmailTypeInquiryReceived   EmailType = "inquiry_received"
	EmailTypeNewsletterSignup  EmailType = "newsletter_signup"
)

// Email represents an email message
type Email struct {
	To          []string  `json:"to"`
	ReplyTo     string    `json:"reply_to,omitempty"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"html_content"`
	TextContent string    `json:"text_content,omitempty"`
	Type        EmailType `json:"type"`
}

// OrderItemData is one frozen line for the order emails
type OrderItemData struct {
	ProductName    string `json:"product_name"`
	DimensionLabel string `json:"dimension_label,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"`  // In cents
	TotalPrice     int64  `json:"total_price"` // In cents
}

// OrderEmailData contains data for the pre-order confirmation and the admin
// notification templates
type OrderEmailData struct {
	SiteName        string          `json:"site_name"`
	SiteURL         string          `json:"site_url"`
	OrderNumber     string          `json:"order_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerMessage string          `json:"customer_message,omitempty"`
	Items           []OrderItemData `json:"items"`
	TotalAmount     int64           `json:"total_amount"` // In cents
	SubmittedAt     time.Time       `json:"submitted_at"`
	Year            int             `json:"year"`
}

// InquiryEmailData contains data for the inquiry notification template
type InquiryEmailData struct {
	SiteName string `json:"site_name"`
	Kind     string `json:"kind"` // custom_order or contact
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message"`
	WoodType string `json:"wood_type,omitempty"`
	Budget   string `json:"budget,omitempty"`
	Year     int    `json:"year"`
}

// NewsletterEmailData contains data for the subscription notification
type NewsletterEmailData struct {
	SiteName        string `json:"site_name"`
	SubscriberEmail string `json:"subscriber_email"`
	Year            int    `json:"year"`
}
