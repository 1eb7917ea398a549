package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/services"
)

// Directions handles POST /api/directions for the route map.
func (h *Handler) Directions(c *gin.Context) {
	if h.Maps == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Directions are not configured"})
		return
	}

	var req services.DirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	routes, err := h.Maps.Routes(c.Request.Context(), req)
	if err != nil {
		if services.IsUpstream(err) {
			h.Log.Warn("directions lookup failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": services.PublicMessage(err, "Directions lookup failed")})
			return
		}
		h.respondError(c, err, "Directions lookup failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}
