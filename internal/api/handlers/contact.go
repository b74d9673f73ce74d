package handlers

import (
	"net/http"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles the public contact form and the admin inbox
type ContactHandler struct {
	service service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param message body service.ContactRequest true "Contact message"
// @Success 200 {object} SuccessResponse "Message stored"
// @Failure 400 {object} ErrorResponse "Name, email, and message are required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.ErrInvalidBody)
		return
	}

	if err := h.service.Submit(c.Request.Context(), &req); err != nil {
		RespondError(c, err)
		return
	}

	respondSuccess(c)
}

// List handles GET /api/contact
// @Summary List contact messages
// @Description Newest first
// @Tags contact
// @Produce json
// @Success 200 {array} models.ContactMessage "Messages"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkRead handles PUT /api/contact/:id/read
// @Summary Mark a contact message as read
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} SuccessResponse "Marked as read"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /api/contact/{id}/read [put]
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	respondSuccess(c)
}

// Delete handles DELETE /api/contact/:id
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} SuccessResponse "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
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
