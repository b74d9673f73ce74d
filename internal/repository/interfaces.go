package repository

import (
	"context"

	"zfast-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ResourceRepositoryInterface is the list/get/create/replace/delete contract shared by every content table
type ResourceRepositoryInterface[T any] interface {
	List(ctx context.Context, limit int) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, id uint, record *T) error
	Delete(ctx context.Context, id uint) error
}

// AdminRepositoryInterface defines the interface for admin account operations
type AdminRepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) (*models.Admin, error)
}

// TeamInfoRepositoryInterface defines the interface for the site settings bag
type TeamInfoRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.TeamInfo, error)
	Upsert(ctx context.Context, values map[string]string) error
}

// ContactMessageRepositoryInterface defines the interface for the contact inbox
type ContactMessageRepositoryInterface interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context, limit int) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// SeasonGalleryRepositoryInterface defines the interface for gallery rows scoped by season
type SeasonGalleryRepositoryInterface interface {
	ListBySeason(ctx context.Context, seasonID uint) ([]models.SeasonGalleryImage, error)
	Create(ctx context.Context, image *models.SeasonGalleryImage) error
	Update(ctx context.Context, seasonID, id uint, image *models.SeasonGalleryImage) error
	Delete(ctx context.Context, seasonID, id uint) error
}

// DashboardRepositoryInterface defines the interface for admin dashboard aggregates
type DashboardRepositoryInterface interface {
	Counts(ctx context.Context) (*DashboardCounts, error)
}
