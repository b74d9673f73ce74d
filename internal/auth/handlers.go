package auth

import (
	"net/http"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
// @Summary Admin login
// @Description Exchange the admin username and password for a bearer token valid for 24 hours
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse "Signed token"
// @Failure 400 {object} map[string]interface{} "Username and password required"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMissingCredentials)
		return
	}

	response, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Verify handles GET /api/auth/verify
// @Summary Verify token
// @Description Check that the bearer token is still valid
// @Tags authentication
// @Produce json
// @Success 200 {object} VerifyResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Unauthorized or token invalid"
// @Security BearerAuth
// @Router /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	username, _ := GetUsername(c)
	c.JSON(http.StatusOK, VerifyResponse{Valid: true, Username: username})
}

// ChangePassword handles POST /api/auth/change-password
// @Summary Change admin password
// @Description Replace the admin password. Every token issued earlier stops working; a fresh token is returned.
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} ChangePasswordResponse "Password changed"
// @Failure 400 {object} map[string]interface{} "Invalid new password"
// @Failure 401 {object} map[string]interface{} "Current password is incorrect"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID, ok := GetAdminID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidBody)
		return
	}

	response, err := h.service.ChangePassword(c.Request.Context(), adminID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Auth request failed")
	}
	c.JSON(status, gin.H{"error": apperrors.PublicMessage(err, c.GetBool(apperrors.ExposeDetailsKey))})
}
