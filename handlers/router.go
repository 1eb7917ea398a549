package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripplanner/middleware"
)

// NewRouter builds the gin engine with middleware and every /api route.
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(h.Log), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		h.Log.Warn("failed to set trusted proxies")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "path": c.Request.URL.Path})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		api.POST("/generate-itinerary", h.GenerateItinerary)
		api.POST("/get-travel-options", h.TravelOptions)
		api.POST("/estimate-cost", h.EstimateCost)
		api.POST("/chat", h.Chat)
		api.POST("/itinerary/pdf", h.ItineraryPDF)
		api.POST("/directions", h.Directions)

		api.POST("/signup", h.Signup)
		api.POST("/signin", h.Signin)
		api.POST("/feedback", h.Feedback)
	}
	return r
}
