// internal/domain/inquiry/service.go
package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teromix/storefront-api/internal/config"
	"github.com/teromix/storefront-api/internal/pkg/email"
	"gorm.io/gorm"
)

// ErrAlreadySubscribed is returned when the email is already on the newsletter list
var ErrAlreadySubscribed = errors.New("inquiry: email already subscribed")

// Service handles inquiry and newsletter business logic
type Service struct {
	db           *gorm.DB
	emailService *email.Service
	config       *config.Config
}

// NewService creates a new inquiry service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:           db,
		emailService: email.NewService(cfg),
		config:       cfg,
	}
}

// CreateRequest represents a custom-order or contact form submission
type CreateRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=custom_order contact"`
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message" binding:"required,min=10"`
	WoodType string `json:"wood_type"`
	Budget   string `json:"budget"`
}

// SubscribeRequest represents a newsletter signup
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Create stores an inquiry and notifies the admin address. The email failure
// is logged, not returned: the inquiry is already persisted.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Inquiry, error) {
	inq := Inquiry{
		Kind:     req.Kind,
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
		WoodType: req.WoodType,
		Budget:   req.Budget,
	}

	if err := s.db.Create(&inq).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	data := email.InquiryEmailData{
		Kind:     inq.Kind,
		Name:     inq.Name,
		Email:    inq.Email,
		Phone:    inq.Phone,
		Subject:  inq.Subject,
		Message:  inq.Message,
		WoodType: inq.WoodType,
		Budget:   inq.Budget,
	}
	if err := s.emailService.SendInquiryNotification(ctx, data); err != nil {
		logrus.WithField("inquiry_id", inq.ID).
			WithError(err).Warn("Failed to send inquiry notification email")
	}

	return &inq, nil
}

// Subscribe adds an email to the newsletter list. Duplicate signups return
// ErrAlreadySubscribed.
func (s *Service) Subscribe(ctx context.Context, req *SubscribeRequest) (*NewsletterSubscriber, error) {
	address := strings.ToLower(strings.TrimSpace(req.Email))

	var existing NewsletterSubscriber
	err := s.db.Where("email = ?", address).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadySubscribed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}

	sub := NewsletterSubscriber{
		Email:        address,
		SubscribedAt: time.Now(),
	}
	if err := s.db.Create(&sub).Error; err != nil {
		// The check above races with concurrent signups; the unique index on
		// email is the real guard
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := s.emailService.SendNewsletterNotification(ctx, address); err != nil {
		logrus.WithField("email", address).
			WithError(err).Warn("Failed to send newsletter notification email")
	}

	return &sub, nil
}
