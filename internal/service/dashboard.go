package service

import (
	"context"
	"fmt"

	"zfast-backend/internal/database/models"
	"zfast-backend/internal/repository"
)

const dashboardLatestMessages = 5

// DashboardResponse summarizes site content for the admin landing page
type DashboardResponse struct {
	Counts         repository.DashboardCounts `json:"counts"`
	LatestMessages []models.ContactMessage    `json:"latest_messages"`
}

// DashboardService builds the admin dashboard summary
type DashboardService struct {
	repo     repository.DashboardRepositoryInterface
	contacts repository.ContactMessageRepositoryInterface
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(repo repository.DashboardRepositoryInterface, contacts repository.ContactMessageRepositoryInterface) *DashboardService {
	return &DashboardService{
		repo:     repo,
		contacts: contacts,
	}
}

// Summary returns table counts and the latest contact messages
func (s *DashboardService) Summary(ctx context.Context) (*DashboardResponse, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count content: %w", err)
	}

	latest, err := s.contacts.List(ctx, dashboardLatestMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest messages: %w", err)
	}

	return &DashboardResponse{
		Counts:         *counts,
		LatestMessages: latest,
	}, nil
}
