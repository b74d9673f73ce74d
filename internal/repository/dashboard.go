package repository

import (
	"context"
	"fmt"

	"zfast-backend/internal/database/models"

	"gorm.io/gorm"
)

// DashboardCounts holds row counts shown on the admin dashboard
type DashboardCounts struct {
	TeamMembers    int64 `json:"team_members"`
	Sponsors       int64 `json:"sponsors"`
	Seasons        int64 `json:"seasons"`
	News           int64 `json:"news"`
	Cars           int64 `json:"cars"`
	AboutSlides    int64 `json:"about_slides"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}

// DashboardRepository aggregates counts across tables
type DashboardRepository struct {
	db *gorm.DB
}

// Ensure DashboardRepository implements DashboardRepositoryInterface
var _ DashboardRepositoryInterface = (*DashboardRepository)(nil)

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Counts returns the number of rows of each content table
func (r *DashboardRepository) Counts(ctx context.Context) (*DashboardCounts, error) {
	db := r.db.WithContext(ctx)
	var counts DashboardCounts

	targets := []struct {
		name  string
		model interface{}
		dest  *int64
	}{
		{"team_members", &models.TeamMember{}, &counts.TeamMembers},
		{"sponsors", &models.Sponsor{}, &counts.Sponsors},
		{"seasons", &models.Season{}, &counts.Seasons},
		{"news", &models.NewsArticle{}, &counts.News},
		{"cars", &models.Car{}, &counts.Cars},
		{"about_slides", &models.AboutSlide{}, &counts.AboutSlides},
		{"contact_messages", &models.ContactMessage{}, &counts.Messages},
	}
	for _, t := range targets {
		if err := db.Model(t.model).Count(t.dest).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", t.name, err)
		}
	}

	if err := db.Model(&models.ContactMessage{}).Where("read = ?", false).Count(&counts.UnreadMessages).Error; err != nil {
		return nil, fmt.Errorf("count unread messages: %w", err)
	}

	return &counts, nil
}
