package repository

import (
	"context"

	"zfast-backend/internal/database/models"

	"gorm.io/gorm"
)

// SeasonGalleryRepository handles gallery rows, always scoped by their season
type SeasonGalleryRepository struct {
	db *gorm.DB
}

// Ensure SeasonGalleryRepository implements SeasonGalleryRepositoryInterface
var _ SeasonGalleryRepositoryInterface = (*SeasonGalleryRepository)(nil)

// NewSeasonGalleryRepository creates a new season gallery repository
func NewSeasonGalleryRepository(db *gorm.DB) *SeasonGalleryRepository {
	return &SeasonGalleryRepository{db: db}
}

// ListBySeason returns the gallery of one season
func (r *SeasonGalleryRepository) ListBySeason(ctx context.Context, seasonID uint) ([]models.SeasonGalleryImage, error) {
	images := make([]models.SeasonGalleryImage, 0)
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("display_order ASC").
		Order("id ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Create inserts a new gallery row
func (r *SeasonGalleryRepository) Create(ctx context.Context, image *models.SeasonGalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// Update replaces image, caption and display order of a row belonging to seasonID
func (r *SeasonGalleryRepository) Update(ctx context.Context, seasonID, id uint, image *models.SeasonGalleryImage) error {
	result := r.db.WithContext(ctx).
		Model(&models.SeasonGalleryImage{}).
		Where("id = ? AND season_id = ?", id, seasonID).
		Select("image", "caption", "display_order").
		Updates(image)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a row belonging to seasonID; deleting a missing row is not an error
func (r *SeasonGalleryRepository) Delete(ctx context.Context, seasonID, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND season_id = ?", id, seasonID).
		Delete(&models.SeasonGalleryImage{}).Error
}
