package service

import (
	"context"
	"mime/multipart"

	"zfast-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ResourceServiceInterface defines the interface shared by every CRUD resource service
type ResourceServiceInterface[Req any, Res any] interface {
	List(ctx context.Context, limit int) ([]Res, error)
	GetByID(ctx context.Context, id uint) (*Res, error)
	Create(ctx context.Context, req *Req) (uint, error)
	Update(ctx context.Context, id uint, req *Req) error
	Delete(ctx context.Context, id uint) error
}

// TeamInfoServiceInterface defines the interface for the site settings service
type TeamInfoServiceInterface interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, values map[string]interface{}) error
}

// ContactServiceInterface defines the interface for the contact inbox service
type ContactServiceInterface interface {
	Submit(ctx context.Context, req *ContactRequest) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// SeasonGalleryServiceInterface defines the interface for the season gallery service
type SeasonGalleryServiceInterface interface {
	List(ctx context.Context, seasonID uint) ([]models.SeasonGalleryImage, error)
	Create(ctx context.Context, seasonID uint, req *GalleryImageRequest) (uint, error)
	Update(ctx context.Context, seasonID, id uint, req *GalleryImageRequest) error
	Delete(ctx context.Context, seasonID, id uint) error
}

// DashboardServiceInterface defines the interface for the admin dashboard summary
type DashboardServiceInterface interface {
	Summary(ctx context.Context) (*DashboardResponse, error)
}

// UploadServiceInterface defines the interface for image uploads
type UploadServiceInterface interface {
	SaveImage(ctx context.Context, file *multipart.FileHeader) (*UploadResponse, error)
}
