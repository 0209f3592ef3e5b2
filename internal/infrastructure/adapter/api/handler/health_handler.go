package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness of the service and its backing stores
type HealthHandler struct {
	database  Pinger
	lockstore Pinger
	logger    coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(database, lockstore Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		database:  database,
		lockstore: lockstore,
		logger:    logger,
	}
}

// Check handles the GET /health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	components := gin.H{
		"database":  "up",
		"lockstore": "up",
	}

	if err := h.database.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Database health check failed", map[string]any{"error": err.Error()})
		components["database"] = "down"
		status = http.StatusServiceUnavailable
	}

	if err := h.lockstore.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Lock store health check failed", map[string]any{"error": err.Error()})
		components["lockstore"] = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":     statusWord(status),
		"components": components,
	})
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}
