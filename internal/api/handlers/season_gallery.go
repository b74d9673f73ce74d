package handlers

import (
	"net/http"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SeasonGalleryHandler handles the image gallery nested under a season
type SeasonGalleryHandler struct {
	service service.SeasonGalleryServiceInterface
}

// NewSeasonGalleryHandler creates a new season gallery handler
func NewSeasonGalleryHandler(service service.SeasonGalleryServiceInterface) *SeasonGalleryHandler {
	return &SeasonGalleryHandler{service: service}
}

// List handles GET /api/seasons/:id/gallery
// @Summary List a season's gallery
// @Tags seasons
// @Produce json
// @Param id path int true "Season ID"
// @Success 200 {array} models.SeasonGalleryImage "Gallery images"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/seasons/{id}/gallery [get]
func (h *SeasonGalleryHandler) List(c *gin.Context) {
	seasonID, err := parseID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}

	images, err := h.service.List(c.Request.Context(), seasonID)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, images)
}

// Create handles POST /api/seasons/:id/gallery
// @Summary Add an image to a season's gallery
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path int true "Season ID"
// @Param image body service.GalleryImageRequest true "Gallery image"
// @Success 201 {object} IDResponse "Created"
// @Failure 400 {object} ErrorResponse "image is required"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /api/seasons/{id}/gallery [post]
func (h *SeasonGalleryHandler) Create(c *gin.Context) {
	seasonID, err := parseID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}

	var req service.GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.ErrInvalidBody)
		return
	}

	id, err := h.service.Create(c.Request.Context(), seasonID, &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// Update handles PUT /api/seasons/:id/gallery/:imgId
// @Summary Replace a gallery image
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path int true "Season ID"
// @Param imgId path int true "Image ID"
// @Param image body service.GalleryImageRequest true "Gallery image"
// @Success 200 {object} SuccessResponse "Updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /api/seasons/{id}/gallery/{imgId} [put]
func (h *SeasonGalleryHandler) Update(c *gin.Context) {
	seasonID, imageID, ok := galleryIDs(c)
	if !ok {
		return
	}

	var req service.GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.ErrInvalidBody)
		return
	}

	if err := h.service.Update(c.Request.Context(), seasonID, imageID, &req); err != nil {
		RespondError(c, err)
		return
	}

	respondSuccess(c)
}

// Delete handles DELETE /api/seasons/:id/gallery/:imgId
// @Summary Remove a gallery image
// @Tags seasons
// @Produce json
// @Param id path int true "Season ID"
// @Param imgId path int true "Image ID"
// @Success 200 {object} SuccessResponse "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/seasons/{id}/gallery/{imgId} [delete]
func (h *SeasonGalleryHandler) Delete(c *gin.Context) {
	seasonID, imageID, ok := galleryIDs(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), seasonID, imageID); err != nil {
		RespondError(c, err)
		return
	}

	respondSuccess(c)
}

func galleryIDs(c *gin.Context) (uint, uint, bool) {
	seasonID, err := parseID(c, "id")
	if err != nil {
		RespondError(c, err)
		return 0, 0, false
	}
	imageID, err := parseID(c, "imgId")
	if err != nil {
		RespondError(c, err)
		return 0, 0, false
	}
	return seasonID, imageID, true
}
