package services

import (
	"fmt"
	"strings"
)

// Prompt is a system instruction plus the user turn sent to the model.
type Prompt struct {
	System string
	User   string
}

const itinerarySystemPrompt = `You are an expert travel itinerary planner. Write a well-structured, engaging itinerary tailored to the traveller's preferences.

Rules:
- Do not mention flights, trains, buses or any other mode of transport.
- Describe each day in flowing paragraphs, not bullet lists.
- Balance sightseeing, rest, culture and meals.
- Respect the traveller's interests, budget, accommodation and dietary preferences.
- Recommend local experiences and authentic places to eat.

Format:
Day N: <title>
Morning: <activities>
Afternoon: <activities>
Evening: <activities>

Finish with "Final Notes": practical tips, a few useful local phrases, packing advice and etiquette, then a short farewell.`

const travelOptionsSystemPrompt = `You are a travel assistant. Reply with JSON only, no prose and no links.
Return exactly 6 travel options mixing flights, trains and buses, in this shape:
{
  "options": [
    {
      "departureTime": "08:30 AM",
      "arrivalTime": "10:45 AM",
      "duration": "2h 15m",
      "price": "₹249",
      "transportMode": "plane"
    }
  ]
}
transportMode must be exactly one of "plane", "train" or "bus".`

const chatSystemPrompt = `You are a friendly travel assistant inside a trip planning dashboard. Answer travel questions concisely: destinations, budgets, packing, local customs and planning tips. If a question is unrelated to travel, answer briefly and steer back to trip planning.`

// BuildItineraryPrompt renders the itinerary prompts. Optional fields fall back
// to neutral defaults so nothing like "undefined" reaches the model.
func BuildItineraryPrompt(r TripRequest) Prompt {
	var b strings.Builder
	b.WriteString("Create a detailed travel itinerary for this trip:\n\n")
	fmt.Fprintf(&b, "- Source city: %s\n", r.Source.String())
	fmt.Fprintf(&b, "- Destination: %s\n", r.Destination.String())
	fmt.Fprintf(&b, "- Travel dates: %s to %s\n", r.StartDate.String(), r.EndDate.String())
	fmt.Fprintf(&b, "- Number of travelers: %s\n", withDefault(r.NumberOfTravelers, "1"))
	fmt.Fprintf(&b, "- Budget: %s\n", r.Budget.String())
	fmt.Fprintf(&b, "- Accommodation: %s\n", withDefault(r.Accommodation, "No Preference"))
	fmt.Fprintf(&b, "- Meal preferences: %s\n", withDefault(r.Meal, "No Preference"))
	fmt.Fprintf(&b, "- Interests: %s\n", r.Interest.String())
	fmt.Fprintf(&b, "- Special requirements: %s\n", withDefault(r.SpecialRequirements, "None"))
	b.WriteString("\nGive every day different activities that cover these interests. Only list activities; no transportation details.")

	return Prompt{System: itinerarySystemPrompt, User: b.String()}
}

// BuildTravelOptionsPrompt renders the travel-options prompts.
func BuildTravelOptionsPrompt(r TripRequest) Prompt {
	user := fmt.Sprintf("Find travel options from %s to %s on %s.",
		r.Source.String(), r.Destination.String(), r.TravelDate.String())
	if n := r.NumberOfTravelers.String(); n != "" {
		user += fmt.Sprintf(" Prices are for %s traveler(s).", n)
	}
	return Prompt{System: travelOptionsSystemPrompt, User: user}
}

// BuildChatPrompt wraps a free-form assistant message.
func BuildChatPrompt(message string) Prompt {
	return Prompt{System: chatSystemPrompt, User: strings.TrimSpace(message)}
}

func withDefault(v Text, def string) string {
	s := v.String()
	if s == "" || strings.EqualFold(s, "undefined") || strings.EqualFold(s, "null") {
		return def
	}
	return s
}
