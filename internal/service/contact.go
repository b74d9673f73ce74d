package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/logger"
	"zfast-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ContactRequest represents a public contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"max=200"`
	Email   string `json:"email" validate:"omitempty,email,max=320"`
	Subject string `json:"subject" validate:"max=300"`
	Message string `json:"message" validate:"max=10000"`
}

// ContactService provides the contact inbox
type ContactService struct {
	repo      repository.ContactMessageRepositoryInterface
	validator *validator.Validate
}

// Ensure ContactService implements ContactServiceInterface
var _ ContactServiceInterface = (*ContactService)(nil)

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactMessageRepositoryInterface, validator *validator.Validate) *ContactService {
	return &ContactService{
		repo:      repo,
		validator: validator,
	}
}

// Submit stores a new unread message
func (s *ContactService) Submit(ctx context.Context, req *ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Name == "" || req.Email == "" || strings.TrimSpace(req.Message) == "" {
		return apperrors.ErrContactFieldsRequired
	}
	if err := validate(s.validator, req); err != nil {
		return err
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}

	logger.WithContext(ctx).WithField("message_id", message.ID).Info("Contact message received")
	return nil
}

// List returns the whole inbox, newest first
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.repo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

// MarkRead flags a message as read
func (s *ContactService) MarkRead(ctx context.Context, id uint) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactMessageNotFound
		}
		return fmt.Errorf("failed to mark contact message read: %w", err)
	}
	return nil
}

// Delete removes a message whether or not it exists
func (s *ContactService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}
