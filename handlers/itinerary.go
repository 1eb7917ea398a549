package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/services"
)

// GenerateItinerary handles POST /api/generate-itinerary.
func (h *Handler) GenerateItinerary(c *gin.Context) {
	var req services.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	plan, err := h.Planner.Generate(c.Request.Context(), services.ModeItinerary, req)
	if err != nil {
		h.respondError(c, err, "Failed to generate itinerary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"itinerary": plan.Itinerary})
}

type itineraryPDFRequest struct {
	TravelerName string `json:"travelerName"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Itinerary    string `json:"itinerary"`
}

// ItineraryPDF handles POST /api/itinerary/pdf and returns the itinerary as a
// PDF attachment. Nothing is stored.
func (h *Handler) ItineraryPDF(c *gin.Context) {
	var req itineraryPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	var missing []string
	if strings.TrimSpace(req.Itinerary) == "" {
		missing = append(missing, "itinerary")
	}
	if strings.TrimSpace(req.Source) == "" {
		missing = append(missing, "source")
	}
	if strings.TrimSpace(req.Destination) == "" {
		missing = append(missing, "destination")
	}
	if len(missing) > 0 {
		h.respondError(c, services.ValidationError{Msg: "Itinerary, source, and destination are required.", Missing: missing}, "")
		return
	}

	pdfBytes, err := services.RenderItineraryPDF(services.ItineraryDocument{
		TravelerName: req.TravelerName,
		Source:       req.Source,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Itinerary:    req.Itinerary,
		GeneratedAt:  time.Now().UTC(),
	})
	if err != nil {
		h.respondError(c, err, "Failed to generate PDF")
		return
	}

	h.Log.Info("itinerary PDF generated", zap.Int("bytes", len(pdfBytes)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", pdfFilename(req.Destination)))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func pdfFilename(destination string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(destination)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "itinerary.pdf"
	}
	return "itinerary-" + b.String() + ".pdf"
}
