package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// teamInfoMaxBytes bounds the settings body; the whole bag is a few kilobytes
const teamInfoMaxBytes = 1 << 20

// TeamInfoHandler handles HTTP requests for the site settings
type TeamInfoHandler struct {
	service service.TeamInfoServiceInterface
}

// NewTeamInfoHandler creates a new team info handler
func NewTeamInfoHandler(service service.TeamInfoServiceInterface) *TeamInfoHandler {
	return &TeamInfoHandler{service: service}
}

// Get handles GET /api/team-info
// @Summary Get site settings
// @Description Returns every site setting as one key to value object
// @Tags team-info
// @Produce json
// @Success 200 {object} map[string]string "Site settings"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/team-info [get]
func (h *TeamInfoHandler) Get(c *gin.Context) {
	values, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, values)
}

// Update handles PUT /api/team-info
// @Summary Update site settings
// @Description Upserts every key of the body in one transaction. Numbers and booleans are stored as text; nested values are rejected.
// @Tags team-info
// @Accept json
// @Produce json
// @Param settings body map[string]string true "Settings to upsert"
// @Success 200 {object} SuccessResponse "Settings stored"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/team-info [put]
func (h *TeamInfoHandler) Update(c *gin.Context) {
	var values map[string]interface{}
	decoder := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, teamInfoMaxBytes))
	decoder.UseNumber()
	if err := decoder.Decode(&values); err != nil || values == nil {
		RespondError(c, apperrors.ErrInvalidBody)
		return
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		RespondError(c, apperrors.ErrInvalidBody)
		return
	}

	if err := h.service.Update(c.Request.Context(), values); err != nil {
		RespondError(c, err)
		return
	}

	respondSuccess(c)
}
