package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "zfast-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
	return buf.Bytes()
}

func storedFile(t *testing.T, store *LocalStore, url string) []byte {
	t.Helper()
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	data, err := os.ReadFile(filepath.Join(store.dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	return data
}

func TestSaveImageKeepsSmallImage(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 100)
	require.NoError(t, err)
	data := testPNG(t, 40, 20)

	url, err := store.SaveImage(context.Background(), data, "logo.png")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Equal(t, data, storedFile(t, store, url))
}

func TestSaveImageShrinksWideImage(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 100)
	require.NoError(t, err)

	url, err := store.SaveImage(context.Background(), testJPEG(t, 400, 200), "photo.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	cfg, format, err := image.DecodeConfig(bytes.NewReader(storedFile(t, store, url)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestSaveImageStoresSVGUnchanged(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 100)
	require.NoError(t, err)
	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"></svg>`)

	url, err := store.SaveImage(context.Background(), svg, "icon.svg")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(url, ".svg"))
	assert.Equal(t, svg, storedFile(t, store, url))
}

func TestSaveImageRejectsOtherContent(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 100)
	require.NoError(t, err)

	_, err = store.SaveImage(context.Background(), []byte("#!/bin/sh\necho hi\n"), "evil.png")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedImage)

	_, err = store.SaveImage(context.Background(), []byte("just text"), "notes.svg")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedImage)
}

func TestSaveImageUsesUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 0)
	require.NoError(t, err)
	data := testPNG(t, 10, 10)

	first, err := store.SaveImage(context.Background(), data, "a.png")
	require.NoError(t, err)
	second, err := store.SaveImage(context.Background(), data, "a.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
