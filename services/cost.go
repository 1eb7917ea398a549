package services

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CostEstimate summarizes the priced options of one transport type.
type CostEstimate struct {
	Type          TransportType `json:"type"`
	Options       int           `json:"options"`
	Cheapest      float64       `json:"cheapest"`
	Average       float64       `json:"average"`
	CheapestPrice string        `json:"cheapestPrice"`
	AveragePrice  string        `json:"averagePrice"`
}

var pricePrinter = message.NewPrinter(language.English)

// EstimateCosts groups options by type and reports cheapest and average
// prices. Options whose price has no number in it are left out; types with no
// priced options are omitted.
func EstimateCosts(options []TravelOption) []CostEstimate {
	type acc struct {
		n      int
		sum    float64
		min    float64
		symbol string
	}
	byType := map[TransportType]*acc{}

	for _, o := range options {
		amount, symbol, ok := ParsePrice(o.Price)
		if !ok {
			continue
		}
		a := byType[o.Type]
		if a == nil {
			a = &acc{min: amount, symbol: symbol}
			byType[o.Type] = a
		}
		a.n++
		a.sum += amount
		if amount < a.min {
			a.min = amount
		}
	}

	estimates := make([]CostEstimate, 0, len(byType))
	for _, t := range TransportTypes {
		a, ok := byType[t]
		if !ok {
			continue
		}
		avg := math.Round(a.sum / float64(a.n))
		estimates = append(estimates, CostEstimate{
			Type:          t,
			Options:       a.n,
			Cheapest:      a.min,
			Average:       avg,
			CheapestPrice: FormatPrice(a.symbol, a.min),
			AveragePrice:  FormatPrice(a.symbol, avg),
		})
	}
	return estimates
}

// ParsePrice pulls the amount and currency symbol out of a display price
// such as "₹1,249" or "$45.50".
func ParsePrice(display string) (amount float64, symbol string, ok bool) {
	var digits strings.Builder
	var sym strings.Builder
	seenDigit := false

scan:
	for _, r := range strings.TrimSpace(display) {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
			seenDigit = true
		case r == '.' && seenDigit:
			digits.WriteRune(r)
		case r == ',':
			// thousands separator
		case !seenDigit && !unicode.IsSpace(r):
			sym.WriteRune(r)
		case seenDigit:
			// stop at the first non-numeric rune after the amount, e.g. "₹249 per person"
			break scan
		}
	}
	if !seenDigit {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(strings.TrimRight(digits.String(), "."), 64)
	if err != nil {
		return 0, "", false
	}
	return v, sym.String(), true
}

// FormatPrice renders amount with digit grouping, e.g. "₹1,249".
func FormatPrice(symbol string, amount float64) string {
	if amount == math.Trunc(amount) {
		if math.Abs(amount) >= math.MaxInt64 {
			return symbol + pricePrinter.Sprintf("%.0f", amount)
		}
		return symbol + pricePrinter.Sprintf("%d", int64(amount))
	}
	return symbol + pricePrinter.Sprintf("%.2f", amount)
}
