package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /api/chat for the dashboard assistant.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	reply, err := h.Planner.Chat(c.Request.Context(), req.Message)
	if err != nil {
		h.respondError(c, err, "Failed to get AI response")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
