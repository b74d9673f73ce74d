package service

import (
	"context"
	"errors"
	"fmt"

	"zfast-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ResourceConfig describes how a ResourceService maps requests and rows for one resource
type ResourceConfig[Req any, M any, Res any] struct {
	// Name is used in wrapped error messages
	Name string
	// NotFound is returned when an id does not exist
	NotFound error
	// DefaultLimit and MaxLimit bound List; zero DefaultLimit lists everything
	DefaultLimit int
	MaxLimit     int

	ToModel    func(req *Req) (*M, error)
	ToResponse func(ctx context.Context, m *M) Res
}

// ResourceService provides list/get/create/update/delete for one resource
type ResourceService[Req any, M any, Res any] struct {
	repo      repository.ResourceRepositoryInterface[M]
	validator *validator.Validate
	cfg       ResourceConfig[Req, M, Res]
}

// NewResourceService creates a new ResourceService
func NewResourceService[Req any, M any, Res any](
	repo repository.ResourceRepositoryInterface[M],
	validator *validator.Validate,
	cfg ResourceConfig[Req, M, Res],
) *ResourceService[Req, M, Res] {
	return &ResourceService[Req, M, Res]{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

type identifiable interface {
	GetID() uint
}

// List returns all rows in canonical order
func (s *ResourceService[Req, M, Res]) List(ctx context.Context, limit int) ([]Res, error) {
	rows, err := s.repo.List(ctx, s.normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.cfg.Name, err)
	}

	responses := make([]Res, len(rows))
	for i := range rows {
		responses[i] = s.cfg.ToResponse(ctx, &rows[i])
	}
	return responses, nil
}

// GetByID returns one row
func (s *ResourceService[Req, M, Res]) GetByID(ctx context.Context, id uint) (*Res, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.cfg.NotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.cfg.Name, err)
	}

	res := s.cfg.ToResponse(ctx, row)
	return &res, nil
}

// Create validates req, applies defaults and inserts a row, returning its id
func (s *ResourceService[Req, M, Res]) Create(ctx context.Context, req *Req) (uint, error) {
	if err := validate(s.validator, req); err != nil {
		return 0, err
	}

	row, err := s.cfg.ToModel(req)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", s.cfg.Name, err)
	}

	if withID, ok := any(row).(identifiable); ok {
		return withID.GetID(), nil
	}
	return 0, nil
}

// Update validates req and overwrites every writable column of row id
func (s *ResourceService[Req, M, Res]) Update(ctx context.Context, id uint, req *Req) error {
	if err := validate(s.validator, req); err != nil {
		return err
	}

	row, err := s.cfg.ToModel(req)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, row); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.cfg.NotFound
		}
		return fmt.Errorf("failed to update %s: %w", s.cfg.Name, err)
	}
	return nil
}

// Delete removes row id. It succeeds whether or not the row existed.
func (s *ResourceService[Req, M, Res]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.cfg.Name, err)
	}
	return nil
}

func (s *ResourceService[Req, M, Res]) normalizeLimit(limit int) int {
	if s.cfg.DefaultLimit <= 0 {
		return 0
	}
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return limit
}
