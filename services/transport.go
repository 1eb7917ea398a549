package services

import "strings"

// TransportType is the closed set of travel categories we can book.
type TransportType string

const (
	TransportPlane TransportType = "plane"
	TransportTrain TransportType = "train"
	TransportBus   TransportType = "bus"
)

// TransportTypes lists every category in display order.
var TransportTypes = []TransportType{TransportPlane, TransportTrain, TransportBus}

var transportKeywords = []struct {
	t        TransportType
	keywords []string
}{
	{TransportPlane, []string{"plane", "flight", "air"}},
	{TransportTrain, []string{"train", "rail"}},
	{TransportBus, []string{"bus", "road"}},
}

// ClassifyTransport maps free text from a completion onto a TransportType.
// Matching is a case-insensitive substring test checked plane, train, bus in
// that order; anything else is a plane.
func ClassifyTransport(raw string) TransportType {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return TransportPlane
	}
	for _, k := range transportKeywords {
		for _, w := range k.keywords {
			if strings.Contains(s, w) {
				return k.t
			}
		}
	}
	return TransportPlane
}

func (t TransportType) Valid() bool {
	switch t {
	case TransportPlane, TransportTrain, TransportBus:
		return true
	}
	return false
}
