package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"googlemaps.github.io/maps"
)

type fakeDirections struct {
	calls int
	last  *maps.DirectionsRequest
	err   error
}

func (f *fakeDirections) Directions(_ context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	f.calls++
	f.last = r
	if f.err != nil {
		return nil, nil, f.err
	}
	return []maps.Route{{
		Summary: "NH48",
		Legs: []*maps.Leg{{
			Distance:     maps.Distance{HumanReadable: "441 km", Meters: 441000},
			Duration:     8*time.Hour + 12*time.Minute,
			StartAddress: "Pune, Maharashtra",
			EndAddress:   "Goa",
		}},
	}}, nil, nil
}

func TestRoutesCachesLookups(t *testing.T) {
	api := &fakeDirections{}
	s := newDirectionsService(api, time.Minute)

	req := DirectionsRequest{Origin: "Pune", Destination: "Goa", Mode: "bus"}
	routes, err := s.Routes(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Route{Summary: "NH48", Distance: "441 km", Duration: "8h 12m", StartAddress: "Pune, Maharashtra", EndAddress: "Goa"}
	if len(routes) != 1 || routes[0] != want {
		t.Fatalf("routes = %+v", routes)
	}
	if api.last.Mode != maps.TravelModeTransit {
		t.Fatalf("bus should route as transit, got %q", api.last.Mode)
	}

	if _, err := s.Routes(context.Background(), DirectionsRequest{Origin: "pune", Destination: "GOA", Mode: "train"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("expected cached second lookup, got %d calls", api.calls)
	}
}

func TestRoutesValidation(t *testing.T) {
	api := &fakeDirections{}
	s := newDirectionsService(api, 0)
	if _, err := s.Routes(context.Background(), DirectionsRequest{Origin: "Pune"}); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("provider should not be called")
	}
}

func TestRoutesUpstreamError(t *testing.T) {
	s := newDirectionsService(&fakeDirections{err: errors.New("REQUEST_DENIED")}, time.Minute)
	_, err := s.Routes(context.Background(), DirectionsRequest{Origin: "Pune", Destination: "Goa"})
	if !IsUpstream(err) || PublicMessage(err, "") != "Directions lookup failed" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestTravelMode(t *testing.T) {
	cases := map[string]maps.Mode{
		"":          maps.TravelModeDriving,
		"plane":     maps.TravelModeDriving,
		"Walking":   maps.TravelModeWalking,
		"cycling":   maps.TravelModeBicycling,
		"train":     maps.TravelModeTransit,
		" transit ": maps.TravelModeTransit,
	}
	for in, want := range cases {
		if got := TravelMode(in); got != want {
			t.Fatalf("TravelMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatTravelDuration(t *testing.T) {
	cases := map[time.Duration]string{
		45 * time.Minute:                "45m",
		2 * time.Hour:                   "2h",
		2*time.Hour + 15*time.Minute:    "2h 15m",
		59*time.Minute + 40*time.Second: "1h",
	}
	for in, want := range cases {
		if got := formatTravelDuration(in); got != want {
			t.Fatalf("formatTravelDuration(%v) = %q, want %q", in, got, want)
		}
	}
}
