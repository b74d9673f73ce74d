package service

import (
	"context"
	"errors"
	"fmt"

	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// GalleryImageRequest represents the body of a gallery image create or update
type GalleryImageRequest struct {
	Image        string `json:"image" validate:"required,max=500"`
	Caption      string `json:"caption" validate:"max=500"`
	DisplayOrder int    `json:"display_order"`
}

// SeasonGalleryService manages the photos under a season
type SeasonGalleryService struct {
	repo      repository.SeasonGalleryRepositoryInterface
	seasons   repository.ResourceRepositoryInterface[models.Season]
	validator *validator.Validate
}

// Ensure SeasonGalleryService implements SeasonGalleryServiceInterface
var _ SeasonGalleryServiceInterface = (*SeasonGalleryService)(nil)

// NewSeasonGalleryService creates a new SeasonGalleryService
func NewSeasonGalleryService(
	repo repository.SeasonGalleryRepositoryInterface,
	seasons repository.ResourceRepositoryInterface[models.Season],
	validator *validator.Validate,
) *SeasonGalleryService {
	return &SeasonGalleryService{
		repo:      repo,
		seasons:   seasons,
		validator: validator,
	}
}

// List returns the gallery of a season
func (s *SeasonGalleryService) List(ctx context.Context, seasonID uint) ([]models.SeasonGalleryImage, error) {
	if err := s.ensureSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	images, err := s.repo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	return images, nil
}

// Create adds a photo to a season and returns its id
func (s *SeasonGalleryService) Create(ctx context.Context, seasonID uint, req *GalleryImageRequest) (uint, error) {
	if req.Image == "" {
		return 0, apperrors.ErrImageRequired
	}
	if err := validate(s.validator, req); err != nil {
		return 0, err
	}
	if err := s.ensureSeason(ctx, seasonID); err != nil {
		return 0, err
	}

	image := &models.SeasonGalleryImage{
		SeasonID:     seasonID,
		Image:        req.Image,
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return 0, fmt.Errorf("failed to create gallery image: %w", err)
	}
	return image.ID, nil
}

// Update replaces a photo of the season
func (s *SeasonGalleryService) Update(ctx context.Context, seasonID, id uint, req *GalleryImageRequest) error {
	if req.Image == "" {
		return apperrors.ErrImageRequired
	}
	if err := validate(s.validator, req); err != nil {
		return err
	}

	err := s.repo.Update(ctx, seasonID, id, &models.SeasonGalleryImage{
		Image:        req.Image,
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGalleryImageNotFound
		}
		return fmt.Errorf("failed to update gallery image: %w", err)
	}
	return nil
}

// Delete removes a photo of the season whether or not it exists
func (s *SeasonGalleryService) Delete(ctx context.Context, seasonID, id uint) error {
	if err := s.repo.Delete(ctx, seasonID, id); err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return nil
}

func (s *SeasonGalleryService) ensureSeason(ctx context.Context, seasonID uint) error {
	if _, err := s.seasons.GetByID(ctx, seasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSeasonNotFound
		}
		return fmt.Errorf("failed to get season: %w", err)
	}
	return nil
}
