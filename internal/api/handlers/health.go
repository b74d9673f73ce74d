package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const readyTimeout = 2 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db          *gorm.DB
	environment string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, environment string) *HealthHandler {
	return &HealthHandler{
		db:          db,
		environment: environment,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Env    string `json:"env" example:"development"`
	// Milliseconds since the Unix epoch
	TS int64 `json:"ts" example:"1760000000000"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Ready    bool              `json:"ready"`
	Services map[string]string `json:"services"`
}

// Health returns the liveness of the process without touching the database
// @Summary Health check
// @Description Always answers while the process is up
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is alive"
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Env:    h.environment,
		TS:     time.Now().UnixMilli(),
	})
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check that the database answers
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /api/health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := ReadyResponse{Ready: true, Services: make(map[string]string)}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err != nil {
		response.Ready = false
		response.Services["database"] = "not ready: " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		response.Ready = false
		response.Services["database"] = "not ready: " + err.Error()
	} else {
		response.Services["database"] = "ready"
	}

	statusCode := http.StatusOK
	if !response.Ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
