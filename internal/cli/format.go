package cli

import (
	"fmt"
	"strings"

	"github.com/pkordes/trackpad/internal/domain"
)

const (
	// MessageEmptyQuery is reported by find when no criterion is given.
	MessageEmptyQuery = "Give at least one keyword, tag or visited state to search by"

	// MessageInvalidVisited is reported for a visited flag that is not a boolean.
	MessageInvalidVisited = "visited should be true or false"
)

func printAttractions(s *session, as []domain.Attraction) {
	for i, a := range as {
		s.printf("%d. %s\n", i+1, formatAttraction(a))
	}
	s.printf("%d attractions listed!\n", len(as))
}

func printItineraries(s *session, its []domain.Itinerary) {
	for i, it := range its {
		s.printf("%d. %s\n", i+1, it)
	}
	s.printf("%d itineraries listed!\n", len(its))
}

// formatAttraction renders a on one line, skipping empty optional fields.
func formatAttraction(a domain.Attraction) string {
	var b strings.Builder
	b.WriteString(a.Name.String())
	field := func(label, v string) {
		if v != "" {
			fmt.Fprintf(&b, "; %s: %s", label, v)
		}
	}
	field("Phone", a.Phone.String())
	field("Email", a.Email.String())
	field("Address", a.Address.String())
	field("Description", a.Description.String())
	field("Location", a.Location.String())
	field("Opening hours", a.OpeningHours.String())
	field("Price range", a.PriceRange.String())
	field("Rating", a.Rating.String())
	if a.Tags.Len() > 0 {
		field("Tags", strings.Join(a.Tags.Names(), ", "))
	}
	if a.Visited {
		b.WriteString(" [visited]")
	}
	return b.String()
}

// printSchedule writes it day by day with each visit's slot.
func printSchedule(s *session, it domain.Itinerary) {
	s.printf("%s\n", it)
	for d, visits := range it.Days() {
		s.printf("Day %d (%s)\n", d+1, it.StartDate.AddDays(d))
		if len(visits) == 0 {
			s.printf("  nothing planned\n")
			continue
		}
		for i, v := range visits {
			s.printf("  %d. %s-%s %s\n", i+1, v.Start, v.End, v.Attraction.Name)
		}
	}
}

// positionOf returns the 1-based position of the first item matching same.
func positionOf[T any](items []T, same func(T) bool) int {
	for i, it := range items {
		if same(it) {
			return i + 1
		}
	}
	return 0
}
