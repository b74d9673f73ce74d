package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/repository"
)

const maxTeamInfoKeyLength = 100

// TeamInfoService provides the site settings key-value bag
type TeamInfoService struct {
	repo repository.TeamInfoRepositoryInterface
}

// Ensure TeamInfoService implements TeamInfoServiceInterface
var _ TeamInfoServiceInterface = (*TeamInfoService)(nil)

// NewTeamInfoService creates a new TeamInfoService
func NewTeamInfoService(repo repository.TeamInfoRepositoryInterface) *TeamInfoService {
	return &TeamInfoService{repo: repo}
}

// GetAll returns every setting as a key to value object
func (s *TeamInfoService) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get team info: %w", err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

// Update stores every key of values in one transaction.
// Scalars are stored as text; nested objects and arrays are rejected.
func (s *TeamInfoService) Update(ctx context.Context, values map[string]interface{}) error {
	normalized := make(map[string]string, len(values))
	for key, raw := range values {
		if strings.TrimSpace(key) == "" {
			return apperrors.NewValidationError("key", "key must not be empty")
		}
		if len(key) > maxTeamInfoKeyLength {
			return apperrors.NewValidationError(key, fmt.Sprintf("key must be at most %d characters", maxTeamInfoKeyLength))
		}

		value, err := teamInfoValue(key, raw)
		if err != nil {
			return err
		}
		normalized[key] = value
	}

	if err := s.repo.Upsert(ctx, normalized); err != nil {
		return fmt.Errorf("failed to update team info: %w", err)
	}
	return nil
}

func teamInfoValue(key string, raw interface{}) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", apperrors.NewValidationError(key, fmt.Sprintf("%s must be a string, number or boolean", key))
	}
}
