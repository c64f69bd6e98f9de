package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/webauth-server/internal/logger"
	"github.com/avolkov/webauth-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (int64, error)
	Login(ctx context.Context, req model.LoginRequest) (string, error)
}

// Auth handles the registration and login endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register processes a registration request. The response never echoes
// the password or its hash.
func (h *Auth) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	userID, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"email", req.Email,
		"user_id", userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Login processes a login request and returns a bearer token.
func (h *Auth) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
