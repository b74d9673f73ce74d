package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/logger"
	"zfast-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// CarRequest represents the body of a car create or update
type CarRequest struct {
	Name         string               `json:"name" validate:"required,max=200"`
	Year         *int                 `json:"year"`
	Description  string               `json:"description"`
	Image        string               `json:"image" validate:"max=500"`
	Specs        []models.CarSpecItem `json:"specs" validate:"dive"`
	DisplayOrder int                  `json:"display_order"`
}

// CarResponse represents a car with its spec list decoded
type CarResponse struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	Year         *int                 `json:"year"`
	Description  string               `json:"description"`
	Image        string               `json:"image"`
	Specs        []models.CarSpecItem `json:"specs"`
	DisplayOrder int                  `json:"display_order"`
	CreatedAt    time.Time            `json:"created_at"`
}

// NewCarService creates the car service. Specs are encoded on write and decoded on read.
func NewCarService(repo repository.ResourceRepositoryInterface[models.Car], v *validator.Validate) *ResourceService[CarRequest, models.Car, CarResponse] {
	return NewResourceService(repo, v, ResourceConfig[CarRequest, models.Car, CarResponse]{
		Name:     "car",
		NotFound: apperrors.ErrCarNotFound,
		ToModel: func(req *CarRequest) (*models.Car, error) {
			specs, err := EncodeCarSpecs(req.Specs)
			if err != nil {
				return nil, err
			}
			return &models.Car{
				Name:         req.Name,
				Year:         req.Year,
				Description:  req.Description,
				Image:        req.Image,
				Specs:        specs,
				DisplayOrder: req.DisplayOrder,
			}, nil
		},
		ToResponse: func(ctx context.Context, car *models.Car) CarResponse {
			return CarResponse{
				ID:           car.ID,
				Name:         car.Name,
				Year:         car.Year,
				Description:  car.Description,
				Image:        car.Image,
				Specs:        DecodeCarSpecs(ctx, car.ID, car.Specs),
				DisplayOrder: car.DisplayOrder,
				CreatedAt:    car.CreatedAt,
			}
		},
	})
}

// EncodeCarSpecs serializes a spec list for storage. A nil list is stored as [].
func EncodeCarSpecs(items []models.CarSpecItem) (datatypes.JSON, error) {
	if items == nil {
		items = []models.CarSpecItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode car specs: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// DecodeCarSpecs parses stored specs. Malformed or missing data decodes to an empty list.
func DecodeCarSpecs(ctx context.Context, carID uint, raw datatypes.JSON) []models.CarSpecItem {
	items := []models.CarSpecItem{}
	if len(raw) == 0 {
		return items
	}
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		logger.WithContext(ctx).WithField("car_id", carID).WithError(err).Warn("Stored car specs are malformed, returning empty list")
		return []models.CarSpecItem{}
	}
	return items
}
