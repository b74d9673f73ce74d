package handlers

import (
	"net/http"

	"zfast-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin dashboard summary
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/dashboard
// @Summary Admin dashboard summary
// @Description Row counts per content table, the unread message count and the latest messages
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardResponse "Summary"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
