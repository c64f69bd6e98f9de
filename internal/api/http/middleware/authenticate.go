package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/webauth-server/internal/api/http/httpctx"
	"github.com/avolkov/webauth-server/internal/logger"
)

// TokenService resolves user IDs from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (int64, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context. Missing header, malformed token, bad signature and
// expiry all answer with the same 401 body.
type Authenticate struct {
	tokenService   TokenService
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager *httpctx.Manager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and
// attaches the user ID to the request context.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString := bearerToken(c.GetHeader("Authorization"))
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	userID, err := m.tokenService.GetUserID(c.Request.Context(), tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"error", err.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx := m.contextManager.SetUserID(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
