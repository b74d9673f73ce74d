package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

//go:generate mockgen -source=local.go -destination=../mocks/storage_mocks.go -package=mocks

const jpegQuality = 85

// ImageStore persists uploaded images and returns the public URL of the stored file
type ImageStore interface {
	SaveImage(ctx context.Context, data []byte, filename string) (string, error)
}

// LocalStore writes images to a directory served under URLPrefix
type LocalStore struct {
	dir       string
	urlPrefix string
	maxWidth  uint
}

// Ensure LocalStore implements ImageStore
var _ ImageStore = (*LocalStore)(nil)

// NewLocalStore creates the upload directory if needed
func NewLocalStore(dir, urlPrefix string, maxWidth int) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if maxWidth < 0 {
		maxWidth = 0
	}
	return &LocalStore{
		dir:       dir,
		urlPrefix: urlPrefix,
		maxWidth:  uint(maxWidth),
	}, nil
}

// SaveImage sniffs the content type, shrinks oversized JPEG and PNG images and writes the file
// under a random name. GIF, WebP and SVG are stored as uploaded.
func (s *LocalStore) SaveImage(ctx context.Context, data []byte, filename string) (string, error) {
	kind := detectImageType(data, filename)

	var out []byte
	var ext string
	switch kind {
	case "image/jpeg", "image/png":
		processed, err := s.shrink(data, kind)
		if err != nil {
			return "", err
		}
		out = processed
		ext = ".jpg"
		if kind == "image/png" {
			ext = ".png"
		}
	case "image/gif":
		out, ext = data, ".gif"
	case "image/webp":
		out, ext = data, ".webp"
	case "image/svg+xml":
		out, ext = data, ".svg"
	default:
		return "", apperrors.ErrUnsupportedImage
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), out, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"file":  name,
		"type":  kind,
		"bytes": len(out),
	}).Info("Stored uploaded image")

	return path.Join(s.urlPrefix, name), nil
}

// shrink re-encodes the image only when it is wider than maxWidth
func (s *LocalStore) shrink(data []byte, kind string) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.ErrUnsupportedImage
	}
	if s.maxWidth == 0 || uint(cfg.Width) <= s.maxWidth {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.ErrUnsupportedImage
	}
	resized := resize.Resize(s.maxWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if kind == "image/png" {
		err = png.Encode(&buf, resized)
	} else {
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}

func detectImageType(data []byte, filename string) string {
	kind := http.DetectContentType(data)
	switch kind {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return kind
	}

	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		head := data
		if len(head) > 1024 {
			head = head[:1024]
		}
		if bytes.Contains(bytes.ToLower(head), []byte("<svg")) {
			return "image/svg+xml"
		}
	}
	return kind
}
