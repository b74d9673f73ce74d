package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/storage"
)

// UploadResponse carries the public URL of a stored upload
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadService validates uploaded files and hands them to the image store
type UploadService struct {
	store    storage.ImageStore
	maxBytes int64
}

// Ensure UploadService implements UploadServiceInterface
var _ UploadServiceInterface = (*UploadService)(nil)

// NewUploadService creates a new UploadService
func NewUploadService(store storage.ImageStore, maxBytes int64) *UploadService {
	return &UploadService{
		store:    store,
		maxBytes: maxBytes,
	}
}

// SaveImage stores one uploaded image
func (s *UploadService) SaveImage(ctx context.Context, file *multipart.FileHeader) (*UploadResponse, error) {
	if file == nil {
		return nil, apperrors.ErrImageRequired
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, apperrors.ErrImageTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if s.maxBytes > 0 {
		reader = io.LimitReader(f, s.maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, apperrors.ErrImageTooLarge
	}
	if len(data) == 0 {
		return nil, apperrors.ErrImageRequired
	}

	url, err := s.store.SaveImage(ctx, data, file.Filename)
	if err != nil {
		return nil, err
	}
	return &UploadResponse{URL: url}, nil
}
