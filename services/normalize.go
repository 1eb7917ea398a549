package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	notAvailable     = "N/A"
	noItineraryText  = "No itinerary generated."
	parseOptionsText = "Failed to parse travel options"
)

// TravelOption is one normalized travel suggestion returned to the UI.
type TravelOption struct {
	DepartureTime string        `json:"departureTime"`
	ArrivalTime   string        `json:"arrivalTime"`
	Duration      string        `json:"duration"`
	Price         string        `json:"price"`
	Type          TransportType `json:"type"`
	Icon          string        `json:"icon"`
	BookingLink   string        `json:"bookingLink"`
}

// StripCodeFences removes Markdown code-fence markers that models like to
// wrap JSON in.
func StripCodeFences(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// NormalizeTravelOptions parses a travel-options completion. Types are
// coerced to a known category and booking links are always rebuilt from q,
// whatever the model suggested.
func NormalizeTravelOptions(raw string, q LinkQuery) ([]TravelOption, error) {
	cleaned := StripCodeFences(raw)

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, ParseError{Msg: parseOptionsText, Err: err}
	}

	items, err := optionsArray(payload)
	if err != nil {
		return nil, ParseError{Msg: parseOptionsText, Err: err}
	}

	options := make([]TravelOption, 0, len(items))
	for _, item := range items {
		var fields map[string]any
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			continue
		}

		mode := textField(fields, "transportMode")
		if mode == "" {
			mode = textField(fields, "type")
		}
		t := ClassifyTransport(mode)

		options = append(options, TravelOption{
			DepartureTime: orNA(textField(fields, "departureTime")),
			ArrivalTime:   orNA(textField(fields, "arrivalTime")),
			Duration:      orNA(textField(fields, "duration")),
			Price:         orNA(textField(fields, "price")),
			Type:          t,
			Icon:          string(t),
			BookingLink:   BuildBookingLink(t, q),
		})
	}
	return options, nil
}

// optionsArray returns the first non-empty array under "options" or
// "travelOptions". An empty array is accepted when no key holds a longer one;
// null or non-array values count as missing.
func optionsArray(payload map[string]json.RawMessage) ([]json.RawMessage, error) {
	var found []json.RawMessage
	seen := false
	for _, key := range []string{"options", "travelOptions"} {
		list, ok := payload[key]
		if !ok {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(list, &items); err != nil || items == nil {
			continue
		}
		if len(items) > 0 {
			return items, nil
		}
		found, seen = items, true
	}
	if !seen {
		return nil, fmt.Errorf("no options array in completion")
	}
	return found, nil
}

// NormalizeItinerary passes the itinerary text through untouched.
func NormalizeItinerary(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return noItineraryText
	}
	return raw
}

func textField(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64, bool:
		return fmt.Sprint(val)
	default:
		// nested objects and arrays are not display values
		return ""
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
