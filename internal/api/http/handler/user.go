package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/webauth-server/internal/api/http/httpctx"
	"github.com/avolkov/webauth-server/internal/logger"
	"github.com/avolkov/webauth-server/internal/model"
)

// UserService loads user records for authenticated principals.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (model.User, error)
}

// userResponse is the public projection of a user. The password hash
// has no field here on purpose.
type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// User handles the protected current-user endpoint.
type User struct {
	userService    UserService
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager *httpctx.Manager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Get returns the authenticated user's details.
func (h *User) Get(c *gin.Context) {
	userID, ok := h.contextManager.GetUserID(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
