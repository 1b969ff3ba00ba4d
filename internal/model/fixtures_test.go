package model_test

import (
	"testing"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/parser"
)

// attractionFixture returns a valid attraction with the given name.
// Callers can override fields after calling this function.
func attractionFixture(t *testing.T, name string) domain.Attraction {
	t.Helper()
	a, err := parser.ParseAttraction(parser.AttractionInput{
		Name:         name,
		Phone:        "91234567",
		Email:        "info@example.sg",
		Address:      "80 Mandai Lake Rd",
		Description:  "Open-air zoo",
		Location:     "Singapore",
		OpeningHours: "0830-1800",
		PriceRange:   "MEDIUM",
		Rating:       "4.5",
		Tags:         []string{"animals"},
	})
	if err != nil {
		t.Fatalf("attractionFixture: %v", err)
	}
	return a
}

// itineraryFixture returns an itinerary with the given name and day count.
func itineraryFixture(t *testing.T, name string, days int) domain.Itinerary {
	t.Helper()
	n, err := domain.NewName(name)
	if err != nil {
		t.Fatalf("itineraryFixture: %v", err)
	}
	start, _ := domain.NewDate("2026-12-01")
	it, err := domain.NewEmptyItinerary(n, start, days)
	if err != nil {
		t.Fatalf("itineraryFixture: %v", err)
	}
	return it
}

func timeOf(t *testing.T, raw string) domain.TimeOfDay {
	t.Helper()
	v, err := domain.NewTimeOfDay(raw)
	if err != nil {
		t.Fatalf("timeOf: %v", err)
	}
	return v
}

func names[T interface{ String() string }](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}

func attractionNames(as []domain.Attraction) []string {
	ns := make([]domain.Name, len(as))
	for i, a := range as {
		ns[i] = a.Name
	}
	return names(ns)
}

func itineraryNames(its []domain.Itinerary) []string {
	ns := make([]domain.Name, len(its))
	for i, it := range its {
		ns[i] = it.Name
	}
	return names(ns)
}
