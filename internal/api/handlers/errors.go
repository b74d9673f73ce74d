package handlers

import (
	"net/http"
	"strconv"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"Not found"`
}

// SuccessResponse is returned by updates and deletes
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// IDResponse is returned by creates
type IDResponse struct {
	ID uint `json:"id" example:"1"`
}

// RespondError writes err as {"error": "..."} with the status its type maps to.
// Internal failures are logged and masked unless the request is marked to expose details.
func RespondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
	}
	c.JSON(status, ErrorResponse{Error: apperrors.PublicMessage(err, c.GetBool(apperrors.ExposeDetailsKey))})
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, strconv.IntSize)
	if err != nil {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
