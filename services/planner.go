package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Mode selects what the Planner asks the model for.
type Mode int

const (
	ModeItinerary Mode = iota
	ModeTravelOptions
)

func (m Mode) String() string {
	switch m {
	case ModeItinerary:
		return "itinerary"
	case ModeTravelOptions:
		return "travel-options"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Plan is the outcome of one Planner call; only the field for the requested
// mode is set.
type Plan struct {
	Itinerary     string
	TravelOptions []TravelOption
}

// Planner runs validate -> prompt -> completion -> normalize for both planner
// endpoints.
type Planner struct {
	completer Completer
	log       *zap.Logger
}

func NewPlanner(c Completer, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{completer: c, log: log}
}

// Generate makes at most one provider call. Cancellation of ctx is not
// forwarded to the provider: a dropped client leaves the call to finish on
// its own.
func (p *Planner) Generate(ctx context.Context, mode Mode, req TripRequest) (Plan, error) {
	if err := req.Validate(mode); err != nil {
		return Plan{}, err
	}

	var prompt Prompt
	switch mode {
	case ModeItinerary:
		prompt = BuildItineraryPrompt(req)
	case ModeTravelOptions:
		prompt = BuildTravelOptionsPrompt(req)
	default:
		return Plan{}, fmt.Errorf("unknown planner mode %s", mode)
	}

	p.log.Info("generating plan",
		zap.Stringer("mode", mode),
		zap.String("source", req.Source.String()),
		zap.String("destination", req.Destination.String()),
	)

	raw, err := p.completer.Complete(context.WithoutCancel(ctx), prompt.System, prompt.User)
	if err != nil {
		return Plan{}, err
	}

	if mode == ModeItinerary {
		return Plan{Itinerary: NormalizeItinerary(raw)}, nil
	}

	options, err := NormalizeTravelOptions(raw, req.LinkQuery())
	if err != nil {
		p.log.Warn("travel options completion did not parse",
			zap.Error(err),
			zap.Int("completion_bytes", len(raw)),
		)
		return Plan{}, err
	}
	return Plan{TravelOptions: options}, nil
}

// Chat answers a free-form assistant message.
func (p *Planner) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ValidationError{Msg: "Message is required.", Missing: []string{"message"}}
	}
	prompt := BuildChatPrompt(message)
	return p.completer.Complete(context.WithoutCancel(ctx), prompt.System, prompt.User)
}
