package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeCompleter struct {
	mu     sync.Mutex
	calls  int
	system string
	user   string
	ctxErr error

	reply string
	err   error
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.system = systemPrompt
	f.user = userPrompt
	f.ctxErr = ctx.Err()
	return f.reply, f.err
}

func TestPlannerItinerary(t *testing.T) {
	fc := &fakeCompleter{reply: "Day 1: Beach\nMorning: swim."}
	p := NewPlanner(fc, zap.NewNop())

	plan, err := p.Generate(context.Background(), ModeItinerary, validItineraryRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Itinerary != fc.reply {
		t.Fatalf("itinerary = %q", plan.Itinerary)
	}
	if plan.TravelOptions != nil {
		t.Fatalf("travel options should be unset")
	}
	if fc.calls != 1 {
		t.Fatalf("expected 1 call, got %d", fc.calls)
	}
	if !strings.Contains(fc.user, "Destination: Goa") {
		t.Fatalf("prompt not built from request: %q", fc.user)
	}
}

func TestPlannerValidationSkipsProvider(t *testing.T) {
	fc := &fakeCompleter{reply: "unused"}
	p := NewPlanner(fc, nil)

	req := validItineraryRequest()
	req.Budget = ""
	if _, err := p.Generate(context.Background(), ModeItinerary, req); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := p.Generate(context.Background(), ModeTravelOptions, TripRequest{Source: "Pune"}); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := p.Chat(context.Background(), "   "); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fc.calls != 0 {
		t.Fatalf("provider called %d times on invalid input", fc.calls)
	}
}

func TestPlannerTravelOptions(t *testing.T) {
	fc := &fakeCompleter{reply: puneGoaCompletion}
	p := NewPlanner(fc, zap.NewNop())

	plan, err := p.Generate(context.Background(), ModeTravelOptions, TripRequest{
		Source: "Pune", Destination: "Goa", TravelDate: "2024-05-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.TravelOptions) != 1 || plan.TravelOptions[0].Type != TransportPlane {
		t.Fatalf("unexpected options %+v", plan.TravelOptions)
	}
	if !strings.Contains(plan.TravelOptions[0].BookingLink, "origin=Pune") {
		t.Fatalf("link not prefilled: %q", plan.TravelOptions[0].BookingLink)
	}
}

func TestPlannerParseFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	fc := &fakeCompleter{reply: "I'm sorry, I can't do that."}
	p := NewPlanner(fc, zap.New(core))

	_, err := p.Generate(context.Background(), ModeTravelOptions, TripRequest{
		Source: "Pune", Destination: "Goa", TravelDate: "2024-05-01",
	})
	if !IsParse(err) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if logs.FilterMessage("travel options completion did not parse").Len() != 1 {
		t.Fatalf("expected a warning for the unparsable completion")
	}
}

func TestPlannerEmptyCompletion(t *testing.T) {
	fc := &fakeCompleter{err: errEmptyCompletion}
	p := NewPlanner(fc, nil)

	_, err := p.Generate(context.Background(), ModeItinerary, validItineraryRequest())
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if PublicMessage(err, "") != "AI response was empty" {
		t.Fatalf("public message = %q", PublicMessage(err, ""))
	}
}

func TestPlannerUpstreamErrorKeepsCause(t *testing.T) {
	cause := errors.New("quota exceeded for key sk-secret")
	fc := &fakeCompleter{err: UpstreamError{Msg: upstreamFailedText, Err: cause}}
	p := NewPlanner(fc, nil)

	_, err := p.Generate(context.Background(), ModeItinerary, validItineraryRequest())
	if !errors.Is(err, cause) {
		t.Fatalf("cause should be wrapped: %v", err)
	}
	if msg := PublicMessage(err, ""); strings.Contains(msg, "sk-secret") {
		t.Fatalf("public message leaked cause: %q", msg)
	}
}

func TestPlannerDoesNotForwardCancellation(t *testing.T) {
	fc := &fakeCompleter{reply: "Day 1: ok"}
	p := NewPlanner(fc, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Generate(ctx, ModeItinerary, validItineraryRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.ctxErr != nil {
		t.Fatalf("provider saw cancelled context: %v", fc.ctxErr)
	}
}

func TestPlannerChat(t *testing.T) {
	fc := &fakeCompleter{reply: "October to March."}
	p := NewPlanner(fc, nil)

	reply, err := p.Chat(context.Background(), "When should I visit Goa?")
	if err != nil || reply != "October to March." {
		t.Fatalf("reply = %q, err = %v", reply, err)
	}
	if fc.system != chatSystemPrompt {
		t.Fatalf("chat should use the assistant system prompt")
	}
}

func TestModeString(t *testing.T) {
	if ModeItinerary.String() != "itinerary" || ModeTravelOptions.String() != "travel-options" {
		t.Fatalf("unexpected mode names")
	}
	if Mode(9).String() != "mode(9)" {
		t.Fatalf("unexpected unknown mode name %q", Mode(9).String())
	}
}
