package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/database"
	"tripplanner/services"
)

type feedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Feedback handles POST /api/feedback: store the message, then mail it to the
// team when a mailer is configured.
func (h *Handler) Feedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Message is required"})
		return
	}

	fb := &database.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	id, err := h.Store.SaveFeedback(c.Request.Context(), fb)
	if err != nil {
		h.Log.Error("save feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to process feedback"})
		return
	}

	if h.Mailer != nil {
		err := h.Mailer.SendFeedback(services.FeedbackNotice{Name: fb.Name, Email: fb.Email, Message: fb.Message})
		if err != nil {
			h.Log.Error("feedback mail failed", zap.Int64("feedback_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to process feedback"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
