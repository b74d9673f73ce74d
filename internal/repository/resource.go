package repository

import (
	"context"

	"gorm.io/gorm"
)

// ResourceSpec parameterizes a ResourceRepository.
// Columns are the writable columns, all of which an update overwrites.
type ResourceSpec struct {
	Columns []string
	Order   []string
}

// ResourceRepository implements plain CRUD over one table
type ResourceRepository[T any] struct {
	db   *gorm.DB
	spec ResourceSpec
}

// NewResourceRepository creates a repository for model T
func NewResourceRepository[T any](db *gorm.DB, spec ResourceSpec) *ResourceRepository[T] {
	return &ResourceRepository[T]{db: db, spec: spec}
}

// List returns every row in canonical order; limit <= 0 means no limit
func (r *ResourceRepository[T]) List(ctx context.Context, limit int) ([]T, error) {
	query := r.db.WithContext(ctx)
	for _, order := range r.spec.Order {
		query = query.Order(order)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	records := make([]T, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID retrieves a row by primary key
func (r *ResourceRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new row and fills in its id
func (r *ResourceRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update overwrites every writable column of row id, zero values included.
// Returns gorm.ErrRecordNotFound when no row has that id.
func (r *ResourceRepository[T]) Update(ctx context.Context, id uint, record *T) error {
	result := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select(r.spec.Columns).
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes row id; deleting a missing row is not an error
func (r *ResourceRepository[T]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
}
