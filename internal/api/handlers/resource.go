package handlers

import (
	"net/http"
	"strconv"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves list/get/create/update/delete for one resource
type ResourceHandler[Req any, Res any] struct {
	service service.ResourceServiceInterface[Req, Res]
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler[Req any, Res any](service service.ResourceServiceInterface[Req, Res]) *ResourceHandler[Req, Res] {
	return &ResourceHandler[Req, Res]{service: service}
}

// List handles GET /<resource>. An optional limit query parameter is passed
// through; resources without a limit ignore it.
func (h *ResourceHandler[Req, Res]) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}

	items, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get handles GET /<resource>/:id
func (h *ResourceHandler[Req, Res]) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Create handles POST /<resource>
func (h *ResourceHandler[Req, Res]) Create(c *gin.Context) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.ErrInvalidBody)
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// Update handles PUT /<resource>/:id. Every writable column is replaced.
func (h *ResourceHandler[Req, Res]) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}

	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.ErrInvalidBody)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		RespondError(c, err)
		return
	}

	respondSuccess(c)
}

// Delete handles DELETE /<resource>/:id
func (h *ResourceHandler[Req, Res]) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	respondSuccess(c)
}
