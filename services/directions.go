package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"googlemaps.github.io/maps"
)

// Route is one driving/transit route between two places.
type Route struct {
	Summary      string `json:"summary"`
	Distance     string `json:"distance"`
	Duration     string `json:"duration"`
	StartAddress string `json:"startAddress"`
	EndAddress   string `json:"endAddress"`
}

// DirectionsRequest asks for routes between two free-text places.
type DirectionsRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
}

type directionsAPI interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// DirectionsService looks up routes for the map panel. Results are cached
// per origin/destination/mode.
type DirectionsService struct {
	api   directionsAPI
	cache *cache.Cache
}

func NewDirectionsService(apiKey string, ttl time.Duration) (*DirectionsService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return newDirectionsService(client, ttl), nil
}

func newDirectionsService(api directionsAPI, ttl time.Duration) *DirectionsService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &DirectionsService{api: api, cache: cache.New(ttl, 2*ttl)}
}

// TravelMode maps UI mode names onto the maps API. Trains and buses are
// served by transit routing; anything unknown drives.
func TravelMode(mode string) maps.Mode {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "walking":
		return maps.TravelModeWalking
	case "bicycling", "cycling":
		return maps.TravelModeBicycling
	case "transit", string(TransportTrain), string(TransportBus):
		return maps.TravelModeTransit
	default:
		return maps.TravelModeDriving
	}
}

func (s *DirectionsService) Routes(ctx context.Context, req DirectionsRequest) ([]Route, error) {
	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		return nil, ValidationError{Msg: "Origin and destination are required."}
	}
	mode := TravelMode(req.Mode)

	key := strings.ToLower(origin + "|" + destination + "|" + string(mode))
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]Route), nil
	}

	routes, _, err := s.api.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
	})
	if err != nil {
		return nil, UpstreamError{Msg: "Directions lookup failed", Err: err}
	}

	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		route := Route{Summary: r.Summary}
		if len(r.Legs) > 0 && r.Legs[0] != nil {
			leg := r.Legs[0]
			route.Distance = leg.Distance.HumanReadable
			route.Duration = formatTravelDuration(leg.Duration)
			route.StartAddress = leg.StartAddress
			route.EndAddress = leg.EndAddress
		}
		out = append(out, route)
	}

	s.cache.Set(key, out, cache.DefaultExpiration)
	return out, nil
}

func formatTravelDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
