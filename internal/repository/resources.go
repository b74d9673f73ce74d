package repository

import (
	"zfast-backend/internal/database/models"

	"gorm.io/gorm"
)

// Ensure the generic repository satisfies the interface for every content table
var (
	_ ResourceRepositoryInterface[models.TeamMember]  = (*ResourceRepository[models.TeamMember])(nil)
	_ ResourceRepositoryInterface[models.Sponsor]     = (*ResourceRepository[models.Sponsor])(nil)
	_ ResourceRepositoryInterface[models.Season]      = (*ResourceRepository[models.Season])(nil)
	_ ResourceRepositoryInterface[models.NewsArticle] = (*ResourceRepository[models.NewsArticle])(nil)
	_ ResourceRepositoryInterface[models.Car]         = (*ResourceRepository[models.Car])(nil)
	_ ResourceRepositoryInterface[models.CarSpec]     = (*ResourceRepository[models.CarSpec])(nil)
	_ ResourceRepositoryInterface[models.AboutSlide]  = (*ResourceRepository[models.AboutSlide])(nil)
)

var displayOrderAsc = []string{"display_order ASC", "id ASC"}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *ResourceRepository[models.TeamMember] {
	return NewResourceRepository[models.TeamMember](db, ResourceSpec{
		Columns: []string{"name", "role", "department", "bio", "image", "linkedin", "display_order"},
		Order:   displayOrderAsc,
	})
}

// NewSponsorRepository creates a new sponsor repository
func NewSponsorRepository(db *gorm.DB) *ResourceRepository[models.Sponsor] {
	return NewResourceRepository[models.Sponsor](db, ResourceSpec{
		Columns: []string{"name", "logo", "website", "tier", "display_order"},
		Order:   displayOrderAsc,
	})
}

// NewSeasonRepository creates a new season repository. Newest seasons come first.
func NewSeasonRepository(db *gorm.DB) *ResourceRepository[models.Season] {
	return NewResourceRepository[models.Season](db, ResourceSpec{
		Columns: []string{"year", "title", "description", "image", "achievements", "display_order"},
		Order:   []string{"display_order DESC", "id ASC"},
	})
}

// NewNewsRepository creates a new news repository. published_at is set once at creation.
func NewNewsRepository(db *gorm.DB) *ResourceRepository[models.NewsArticle] {
	return NewResourceRepository[models.NewsArticle](db, ResourceSpec{
		Columns: []string{"title", "summary", "content", "image", "category"},
		Order:   []string{"published_at DESC", "id ASC"},
	})
}

// NewCarRepository creates a new car repository
func NewCarRepository(db *gorm.DB) *ResourceRepository[models.Car] {
	return NewResourceRepository[models.Car](db, ResourceSpec{
		Columns: []string{"name", "year", "description", "image", "specs", "display_order"},
		Order:   displayOrderAsc,
	})
}

// NewCarSpecRepository creates a new car spec repository
func NewCarSpecRepository(db *gorm.DB) *ResourceRepository[models.CarSpec] {
	return NewResourceRepository[models.CarSpec](db, ResourceSpec{
		Columns: []string{"category", "label", "value", "unit", "icon", "display_order"},
		Order:   displayOrderAsc,
	})
}

// NewAboutSlideRepository creates a new about slide repository
func NewAboutSlideRepository(db *gorm.DB) *ResourceRepository[models.AboutSlide] {
	return NewResourceRepository[models.AboutSlide](db, ResourceSpec{
		Columns: []string{"image", "caption", "display_order"},
		Order:   displayOrderAsc,
	})
}
