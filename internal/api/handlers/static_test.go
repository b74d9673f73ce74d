package handlers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"zfast-backend/internal/api/handlers"
	"zfast-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticHandler(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.NoRoute(handlers.NewStaticHandler(dir, true).NotFound)

	t.Run("Serves files", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/css/site.css", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "body{}", recorder.Body.String())
		assert.Equal(t, "public, max-age=86400", recorder.Header().Get("Cache-Control"))
	})

	t.Run("Falls back to index.html", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/seasons/2024", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "home")
	})

	t.Run("Unknown API path is JSON", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/nope", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Not found")
	})

	t.Run("Traversal stays inside the public dir", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/../../etc/passwd", nil)
		assert.NotContains(t, recorder.Body.String(), "root:")
	})
}
