package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-backend/internal/domains/auth/model"
	"news-backend/internal/domains/auth/session"
	"news-backend/internal/shared/middleware"
	"news-backend/internal/shared/response"
)

// =====================================================
// AUTH HANDLER
// =====================================================

type AuthHandler struct {
	sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// Me returns the identity behind the current session.
// GET /api/login (mounted behind RequireSession)
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, identity)
}

// Login stores the access token in the signed session cookie. The token is
// opaque here; it gets validated against Google on the next protected request.
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Validation failed", err.Error())
		return
	}

	if err := h.sessions.SetCookie(c, req.AccessToken); err != nil {
		response.InternalServerError(c, "Failed to create session")
		return
	}
	c.Status(http.StatusOK)
}

// Logout clears the session cookie.
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.Status(http.StatusOK)
}
