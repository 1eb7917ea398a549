package services

import (
	"net/url"
	"strings"
)

const trackingTag = "tripplanner"

// bookingBases holds the only booking URLs we ever hand out.
var bookingBases = map[TransportType]string{
	TransportPlane: "https://www.skyscanner.co.in/",
	TransportTrain: "https://www.irctc.co.in/",
	TransportBus:   "https://www.redbus.in/",
}

// LinkQuery carries the optional trip fields appended to a booking link.
type LinkQuery struct {
	Source      string
	Destination string
	Date        string
}

func (q LinkQuery) empty() bool {
	return strings.TrimSpace(q.Source) == "" &&
		strings.TrimSpace(q.Destination) == "" &&
		strings.TrimSpace(q.Date) == ""
}

// BookingBase returns the canonical booking URL for t. Unknown types get the
// plane URL.
func BookingBase(t TransportType) string {
	if base, ok := bookingBases[t]; ok {
		return base
	}
	return bookingBases[TransportPlane]
}

// BuildBookingLink returns the booking URL for t, with the trip fields added
// as query parameters when any are set. It falls back to the bare base URL on
// any construction problem, so the result is never empty.
func BuildBookingLink(t TransportType, q LinkQuery) string {
	base := BookingBase(t)
	if q.empty() {
		return base
	}

	u, err := url.Parse(base)
	if err != nil {
		return base
	}

	params := url.Values{}
	if s := strings.TrimSpace(q.Source); s != "" {
		params.Set("origin", s)
	}
	if s := strings.TrimSpace(q.Destination); s != "" {
		params.Set("destination", s)
	}
	if s := strings.TrimSpace(q.Date); s != "" {
		params.Set("date", s)
	}
	params.Set("utm_source", trackingTag)
	u.RawQuery = params.Encode()

	link := u.String()
	if !strings.HasPrefix(link, base) || strings.Contains(link, "example.com") {
		return base
	}
	return link
}
