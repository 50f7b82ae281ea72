// internal/pkg/email/service.go
package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teromix/storefront-api/internal/config"
)

// Service handles all outbound email
type Service struct {
	config *config.Config
	client *http.Client
}

// NewService creates a new email service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send delivers an email using the configured provider
func (s *Service) Send(ctx context.Context, email *Email) error {
	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "sendgrid":
		return s.sendSendGridEmail(ctx, email)
	case "resend":
		return s.sendResendEmail(ctx, email)
	case "log":
		// Development fallback: log instead of sending
		logrus.WithFields(logrus.Fields{
			"to":      email.To,
			"subject": email.Subject,
			"type":    email.Type,
		}).Info("Email delivery skipped (provider=log)")
		return nil
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// SendOrderConfirmation sends the pre-order confirmation to the customer
func (s *Service) SendOrderConfirmation(ctx context.Context, data OrderEmailData) error {
	s.fillSiteData(&data)

	htmlContent, err := renderTemplate("order_confirmation", data)
	if err != nil {
		return err
	}

	return s.Send(ctx, &Email{
		To:          []string{data.CustomerEmail},
		ReplyTo:     s.config.Email.ReplyTo,
		Subject:     fmt.Sprintf("Your Pre-Order Confirmation - %s", s.config.Email.FromName),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderConfirmation,
	})
}

// SendOrderNotification sends the pre-order details to the admin address
func (s *Service) SendOrderNotification(ctx context.Context, data OrderEmailData) error {
	s.fillSiteData(&data)

	htmlContent, err := renderTemplate("order_notification", data)
	if err != nil {
		return err
	}

	return s.Send(ctx, &Email{
		To:          []string{s.config.Email.AdminEmail},
		ReplyTo:     data.CustomerEmail,
		Subject:     fmt.Sprintf("New Pre-Order Received - %s", data.OrderNumber),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderNotification,
	})
}

// SendInquiryNotification forwards a customer inquiry to the admin address
func (s *Service) SendInquiryNotification(ctx context.Context, data InquiryEmailData) error {
	data.SiteName = s.config.Email.FromName
	data.Year = time.Now().Year()

	htmlContent, err := renderTemplate("inquiry_notification", data)
	if err != nil {
		return err
	}

	subject := "New Contact Inquiry"
	if data.Kind == "custom_order" {
		subject = "New Custom Order Inquiry"
	}

	return s.Send(ctx, &Email{
		To:          []string{s.config.Email.AdminEmail},
		ReplyTo:     data.Email,
		Subject:     subject,
		HTMLContent: htmlContent,
		Type:        EmailTypeInquiryReceived,
	})
}

// SendNewsletterNotification tells the marketing address about a new subscriber
func (s *Service) SendNewsletterNotification(ctx context.Context, subscriberEmail string) error {
	data := NewsletterEmailData{
		SiteName:        s.config.Email.FromName,
		SubscriberEmail: subscriberEmail,
		Year:            time.Now().Year(),
	}

	htmlContent, err := renderTemplate("newsletter_notification", data)
	if err != nil {
		return err
	}

	return s.Send(ctx, &Email{
		To:          []string{s.config.Email.MarketingEmail},
		Subject:     "New Newsletter Subscription",
		HTMLContent: htmlContent,
		Type:        EmailTypeNewsletterSignup,
	})
}

func (s *Service) fillSiteData(data *OrderEmailData) {
	data.SiteName = s.config.Email.FromName
	data.SiteURL = s.config.Email.BaseURL
	data.Year = time.Now().Year()
}
