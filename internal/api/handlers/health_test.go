package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"zfast-backend/internal/api/handlers"
	"zfast-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	db := testutils.SetupTestDB(t)
	handler := handlers.NewHealthHandler(db, "test")
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/health", handler.Health)
	httpSuite.Router.GET("/api/health/ready", handler.Ready)

	t.Run("Health", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, "test", response.Env)
		assert.InDelta(t, time.Now().UnixMilli(), response.TS, float64(time.Minute.Milliseconds()))
	})

	t.Run("Ready", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/health/ready", nil)

		var response handlers.ReadyResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Ready)
		assert.Equal(t, "ready", response.Services["database"])
	})

	t.Run("Not ready after close", func(t *testing.T) {
		closed := testutils.SetupTestDB(t)
		sqlDB, err := closed.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		suite := testutils.SetupHTTPTest()
		suite.Router.GET("/api/health/ready", handlers.NewHealthHandler(closed, "test").Ready)

		recorder := suite.MakeRequest(http.MethodGet, "/api/health/ready", nil)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}
