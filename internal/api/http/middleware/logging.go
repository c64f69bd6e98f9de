package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avolkov/webauth-server/internal/logger"
)

// Logging logs each HTTP request with a generated request id, status
// and duration.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle assigns a request id and logs start and completion of the
// request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	c.Set("request_id", requestID)
	c.Header("X-Request-Id", requestID)

	l.logger.Info("HTTP request started",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path)

	c.Next()

	l.logger.Info("HTTP request completed",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds())
}
