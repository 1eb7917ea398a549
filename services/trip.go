package services

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Text is a free-form request field. The UI sometimes sends numbers (for
// example numberOfTravelers), so numeric JSON values are kept as their text.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return strings.TrimSpace(string(t)) }

func (t Text) present() bool { return t.String() != "" }

// TripRequest is the trip description posted by the planner UI.
type TripRequest struct {
	Source              Text `json:"source"`
	Destination         Text `json:"destination"`
	TravelDate          Text `json:"travelDate"`
	StartDate           Text `json:"startDate"`
	EndDate             Text `json:"endDate"`
	Interest            Text `json:"interest"`
	Budget              Text `json:"budget"`
	NumberOfTravelers   Text `json:"numberOfTravelers"`
	Accommodation       Text `json:"accommodation"`
	Meal                Text `json:"meal"`
	SpecialRequirements Text `json:"specialRequirements"`
}

const (
	itineraryRequiredMsg = "All required fields must be provided."
	optionsRequiredMsg   = "Source, destination, and travel date are required."
)

type namedField struct {
	name string
	v    Text
}

// Validate checks the fields mode needs. It never inspects their format.
func (r TripRequest) Validate(mode Mode) error {
	msg := itineraryRequiredMsg
	required := []namedField{
		{"interest", r.Interest},
		{"budget", r.Budget},
		{"source", r.Source},
		{"destination", r.Destination},
		{"startDate", r.StartDate},
		{"endDate", r.EndDate},
	}
	if mode == ModeTravelOptions {
		msg = optionsRequiredMsg
		required = []namedField{
			{"source", r.Source},
			{"destination", r.Destination},
			{"travelDate", r.TravelDate},
		}
	}

	var missing []string
	for _, f := range required {
		if !f.v.present() {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return ValidationError{Msg: msg, Missing: missing}
	}
	return nil
}

// LinkQuery returns the fields used to prefill booking links.
func (r TripRequest) LinkQuery() LinkQuery {
	date := r.TravelDate.String()
	if date == "" {
		date = r.StartDate.String()
	}
	return LinkQuery{Source: r.Source.String(), Destination: r.Destination.String(), Date: date}
}
