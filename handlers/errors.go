package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/middleware"
	"tripplanner/services"
)

// respondError maps err onto a status and a JSON body. Only messages the
// services mark as safe reach the client; the full error goes to the log.
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var verr services.ValidationError
	if errors.As(err, &verr) {
		body := gin.H{"error": verr.Msg}
		if len(verr.Missing) > 0 {
			body["missing"] = verr.Missing
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	h.Log.Error("request failed",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": services.PublicMessage(err, fallback)})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
