package repository

import (
	"context"

	"zfast-backend/internal/database/models"

	"gorm.io/gorm"
)

// ContactMessageRepository handles database operations for contact form submissions
type ContactMessageRepository struct {
	db *gorm.DB
}

// Ensure ContactMessageRepository implements ContactMessageRepositoryInterface
var _ ContactMessageRepositoryInterface = (*ContactMessageRepository)(nil)

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

// Create inserts a new unread message
func (r *ContactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	message.Read = false
	return r.db.WithContext(ctx).Create(message).Error
}

// List returns messages newest first; limit <= 0 means all
func (r *ContactMessageRepository) List(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	messages := make([]models.ContactMessage, 0)
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flags a message as read. Marking an already read message succeeds.
func (r *ContactMessageRepository) MarkRead(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a message; deleting a missing message is not an error
func (r *ContactMessageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ContactMessage{}).Error
}
