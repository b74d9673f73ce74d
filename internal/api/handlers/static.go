package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the built frontend and falls back to index.html so
// client-side routes resolve. Unknown /api paths answer with JSON instead.
type StaticHandler struct {
	publicDir string
	cache     bool
}

// NewStaticHandler creates a static handler rooted at publicDir.
// With cache set, files are sent with a one day max-age.
func NewStaticHandler(publicDir string, cache bool) *StaticHandler {
	return &StaticHandler{publicDir: publicDir, cache: cache}
}

// NotFound is installed as the router's NoRoute handler
func (h *StaticHandler) NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if file, ok := h.resolve(path); ok {
		h.serve(c, file)
		return
	}

	index := filepath.Join(h.publicDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.File(index)
}

// resolve maps a URL path to a regular file inside publicDir
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	clean := filepath.FromSlash(filepath.Clean("/" + urlPath))
	file := filepath.Join(h.publicDir, clean)

	info, err := os.Stat(file)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		file = filepath.Join(file, "index.html")
		if info, err = os.Stat(file); err != nil || info.IsDir() {
			return "", false
		}
	}
	return file, true
}

func (h *StaticHandler) serve(c *gin.Context, file string) {
	if h.cache {
		c.Header("Cache-Control", "public, max-age=86400")
	}
	c.File(file)
}
