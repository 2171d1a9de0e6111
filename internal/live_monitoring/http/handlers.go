package http

import (
	"net/http"

	"github.com/blockguard/blockguard-backend/internal/live_monitoring/monitor"
	"github.com/gin-gonic/gin"
)

// Handler serves the live monitor route
type Handler struct {
	monitor *monitor.Monitor
}

// New creates a new Handler
func New(m *monitor.Monitor) *Handler {
	return &Handler{monitor: m}
}

func (h *Handler) LiveAttack(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Snapshot())
}

// Register registers the live monitor routes
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/live-attack", h.LiveAttack)
}
