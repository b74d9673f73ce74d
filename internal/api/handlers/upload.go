package handlers

import (
	"errors"
	"net/http"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// multipart boundaries and headers on top of the file itself
const formOverhead = 1 << 20

// UploadHandler handles image uploads from the admin panel
type UploadHandler struct {
	service  service.UploadServiceInterface
	maxBytes int64
}

// NewUploadHandler creates a new upload handler. Request bodies larger than
// maxBytes plus form overhead are cut off before they are parsed.
func NewUploadHandler(service service.UploadServiceInterface, maxBytes int64) *UploadHandler {
	return &UploadHandler{service: service, maxBytes: maxBytes}
}

// Upload handles POST /api/upload
// @Summary Upload an image
// @Description Stores a JPEG, PNG, GIF, WebP or SVG image. Wide JPEG and PNG images are downscaled.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} service.UploadResponse "Stored image URL"
// @Failure 400 {object} ErrorResponse "Missing, unsupported or oversized image"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+formOverhead)
	}

	file, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(c, apperrors.ErrImageTooLarge)
			return
		}
		RespondError(c, apperrors.ErrImageRequired)
		return
	}

	response, err := h.service.SaveImage(c.Request.Context(), file)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
