package repository

import (
	"context"

	"zfast-backend/internal/database/models"

	"gorm.io/gorm"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *gorm.DB
}

// Ensure AdminRepository implements AdminRepositoryInterface
var _ AdminRepositoryInterface = (*AdminRepository)(nil)

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByUsername retrieves an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByID retrieves an admin by id
func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdatePassword stores a new hash and bumps the token version, returning the updated row
func (r *AdminRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Admin{}).Where("id = ?", id).Updates(map[string]interface{}{
			"password":      passwordHash,
			"token_version": gorm.Expr("token_version + 1"),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&admin, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
