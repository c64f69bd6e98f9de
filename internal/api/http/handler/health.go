package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger checks reachability of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health answers liveness probes, including a database ping.
type Health struct {
	db Pinger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger) *Health {
	return &Health{db: db}
}

// Check reports 200 when the database is reachable.
func (h *Health) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
