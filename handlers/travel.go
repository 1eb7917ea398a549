package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/services"
)

// TravelOptions handles POST /api/get-travel-options.
func (h *Handler) TravelOptions(c *gin.Context) {
	options, ok := h.travelOptions(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"travelOptions": options})
}

// EstimateCost handles POST /api/estimate-cost: the same lookup as
// TravelOptions plus a per-type price summary.
func (h *Handler) EstimateCost(c *gin.Context) {
	options, ok := h.travelOptions(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"travelOptions": options,
		"estimates":     services.EstimateCosts(options),
	})
}

func (h *Handler) travelOptions(c *gin.Context) ([]services.TravelOption, bool) {
	var req services.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return nil, false
	}

	plan, err := h.Planner.Generate(c.Request.Context(), services.ModeTravelOptions, req)
	if err != nil {
		h.respondError(c, err, "Failed to fetch travel options")
		return nil, false
	}
	return plan.TravelOptions, true
}
