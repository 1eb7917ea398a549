package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ItineraryDocument is the content of a downloadable itinerary.
type ItineraryDocument struct {
	TravelerName string
	Source       string
	Destination  string
	StartDate    string
	EndDate      string
	Itinerary    string
	GeneratedAt  time.Time
}

// RenderItineraryPDF lays out an itinerary as an A4 PDF and returns the bytes.
func RenderItineraryPDF(doc ItineraryDocument) ([]byte, error) {
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now().UTC()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	// core fonts are cp1252; this maps what it can and drops the rest (emoji)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("AI-generated itinerary - verify opening hours and prices before you travel - page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Trip Planner", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Your personalised travel itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(125, 7, tr(value), "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	name := strings.TrimSpace(doc.TravelerName)
	if name == "" {
		name = "Guest Traveler"
	}
	row("Traveler", name)
	row("Route", fmt.Sprintf("%s to %s", doc.Source, doc.Destination))
	if doc.StartDate != "" || doc.EndDate != "" {
		row("Dates", fmt.Sprintf("%s - %s", fmtDateReadable(doc.StartDate), fmtDateReadable(doc.EndDate)))
	}
	row("Generated", doc.GeneratedAt.Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	sectionHeader("Itinerary")
	for _, para := range itineraryParagraphs(doc.Itinerary) {
		if isDayHeading(para) {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(13, 24, 37)
		} else {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(40, 40, 40)
		}
		pdf.MultiCell(170, 5, tr(para), "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

// itineraryParagraphs splits model text into printable lines, dropping
// Markdown emphasis markers.
func itineraryParagraphs(text string) []string {
	replacer := strings.NewReplacer("**", "", "##", "", "# ", "")
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(replacer.Replace(line))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isDayHeading(line string) bool {
	l := strings.ToLower(line)
	return strings.HasPrefix(l, "day ") || strings.HasPrefix(l, "final notes")
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
