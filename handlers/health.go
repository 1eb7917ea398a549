package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	dbStatus := "ok"
	if h.Store == nil {
		dbStatus = "not initialized"
	} else if err := h.Store.Ping(c.Request.Context()); err != nil {
		dbStatus = "error"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "Trip Planner API",
		"database": dbStatus,
	})
}
