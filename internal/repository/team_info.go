package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"zfast-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamInfoRepository handles database operations for the site settings bag
type TeamInfoRepository struct {
	db *gorm.DB
}

// Ensure TeamInfoRepository implements TeamInfoRepositoryInterface
var _ TeamInfoRepositoryInterface = (*TeamInfoRepository)(nil)

// NewTeamInfoRepository creates a new team info repository
func NewTeamInfoRepository(db *gorm.DB) *TeamInfoRepository {
	return &TeamInfoRepository{db: db}
}

// GetAll returns every setting ordered by key
func (r *TeamInfoRepository) GetAll(ctx context.Context) ([]models.TeamInfo, error) {
	rows := make([]models.TeamInfo, 0)
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert inserts or overwrites every key in one transaction. Either all keys are written or none.
func (r *TeamInfoRepository) Upsert(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range keys {
			row := models.TeamInfo{Key: key, Value: values[key], UpdatedAt: now}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("upsert %q: %w", key, err)
			}
		}
		return nil
	})
}
