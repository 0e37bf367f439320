package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"serviciosmarket/core/internal/api/middleware"
	"serviciosmarket/core/internal/services"
)

// RestAuthHandler handles REST requests for authentication.
type RestAuthHandler struct {
	authService services.IAuthService
}

// NewRestAuthHandler creates a new RestAuthHandler.
func NewRestAuthHandler(authService services.IAuthService) *RestAuthHandler {
	return &RestAuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /v1/auth/login
func (h *RestAuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout handles POST /v1/auth/logout
func (h *RestAuthHandler) Logout(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)
	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SwitchUser handles POST /v1/auth/switch
func (h *RestAuthHandler) SwitchUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)
	if err := h.authService.SwitchUser(c.Request.Context(), userID); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Switch failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /v1/auth/me
func (h *RestAuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)
	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
		return
	}
	c.JSON(http.StatusOK, user)
}
