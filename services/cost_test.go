package services

import (
	"strings"
	"testing"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in     string
		amount float64
		symbol string
		ok     bool
	}{
		{"₹249", 249, "₹", true},
		{"₹1,249", 1249, "₹", true},
		{"$45.50", 45.5, "$", true},
		{"₹249 per person", 249, "₹", true},
		{"120", 120, "", true},
		{"N/A", 0, "", false},
		{"", 0, "", false},
	}
	for _, tc := range cases {
		amount, symbol, ok := ParsePrice(tc.in)
		if ok != tc.ok || amount != tc.amount || symbol != tc.symbol {
			t.Fatalf("ParsePrice(%q) = (%v, %q, %v), want (%v, %q, %v)",
				tc.in, amount, symbol, ok, tc.amount, tc.symbol, tc.ok)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice("₹", 1249); got != "₹1,249" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPrice("$", 45.5); got != "$45.50" {
		t.Fatalf("got %q", got)
	}
}

func TestEstimateCosts(t *testing.T) {
	options := []TravelOption{
		{Type: TransportBus, Price: "N/A"},
		{Type: TransportTrain, Price: "₹50"},
		{Type: TransportPlane, Price: "₹300"},
		{Type: TransportPlane, Price: "₹100"},
		{Type: TransportPlane, Price: "₹1,150"},
	}
	got := EstimateCosts(options)
	if len(got) != 2 {
		t.Fatalf("expected plane and train estimates, got %+v", got)
	}

	plane, train := got[0], got[1]
	if plane.Type != TransportPlane || train.Type != TransportTrain {
		t.Fatalf("estimates out of order: %+v", got)
	}
	if plane.Options != 3 || plane.Cheapest != 100 || plane.Average != 517 {
		t.Fatalf("unexpected plane estimate %+v", plane)
	}
	if plane.CheapestPrice != "₹100" || plane.AveragePrice != "₹517" {
		t.Fatalf("unexpected plane display prices %+v", plane)
	}
	if train.Options != 1 || train.Cheapest != 50 || train.Average != 50 {
		t.Fatalf("unexpected train estimate %+v", train)
	}
}

func TestEstimateCostsEmpty(t *testing.T) {
	if got := EstimateCosts(nil); len(got) != 0 {
		t.Fatalf("expected no estimates, got %+v", got)
	}
}

func TestFormatPriceHugeAmounts(t *testing.T) {
	got := FormatPrice("₹", 1e20)
	if strings.Contains(got, "-") || !strings.HasPrefix(got, "₹1") {
		t.Fatalf("got %q", got)
	}

	est := EstimateCosts([]TravelOption{{Type: TransportPlane, Price: "₹99999999999999999999"}})
	if len(est) != 1 {
		t.Fatalf("expected one estimate, got %+v", est)
	}
	for _, p := range []string{est[0].CheapestPrice, est[0].AveragePrice} {
		if strings.Contains(p, "-") || !strings.HasPrefix(p, "₹1") {
			t.Fatalf("huge price rendered as %q", p)
		}
	}
}
