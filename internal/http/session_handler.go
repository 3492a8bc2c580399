package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-lab/internal/service"
)

// SessionHandler mantiene dependencias para los endpoints de sesión y share link.
type SessionHandler struct {
	logger   *zap.Logger
	sessions *service.SessionService
}

// NewSessionHandler crea una instancia de SessionHandler.
func NewSessionHandler(logger *zap.Logger, sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{logger: logger, sessions: sessions}
}

// CreateSession maneja POST /sessions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		FounderName   string `json:"founder_name" binding:"required"`
		FounderEmail  string `json:"founder_email"`
		ProductName   string `json:"product_name"`
		SharePassword string `json:"share_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.sessions.CreateSession(c.Request.Context(), req.FounderName, req.FounderEmail, req.ProductName, req.SharePassword)
	if err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// AuthorizeShare maneja POST /share/:token/auth.
func (h *SessionHandler) AuthorizeShare(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, session, err := h.sessions.AuthorizeShare(c.Request.Context(), c.Param("token"), req.Password)
	switch {
	case errors.Is(err, service.ErrShareRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts"})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "share link not found"})
	case errors.Is(err, service.ErrShareExpired):
		c.JSON(http.StatusGone, gin.H{"error": "share link expired"})
	case errors.Is(err, service.ErrSharePassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
	case err != nil:
		h.logger.Error("share auth failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not authorize"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"token":        token,
			"founder_name": session.FounderName,
			"product_name": session.ProductName,
		})
	}
}

// InviteValidator maneja POST /sessions/:id/invite.
func (h *SessionHandler) InviteValidator(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.sessions.InviteValidator(c.Request.Context(), c.Param("id"), req.Email)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrInviteUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "invitations not configured"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send invite"})
	default:
		c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
	}
}
