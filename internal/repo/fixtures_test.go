package repo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/parser"
)

func attractionFixture(t *testing.T, name string) domain.Attraction {
	t.Helper()
	a, err := parser.ParseAttraction(parser.AttractionInput{
		Name:         name,
		Phone:        "62693411",
		Email:        "hello@gardens.sg",
		Address:      "18 Marina Gardens Dr",
		Description:  "Supertrees and conservatories",
		Location:     "Singapore",
		OpeningHours: "0900-2100",
		PriceRange:   "low",
		Rating:       "4.8",
		Tags:         []string{"nature", "family"},
	})
	require.NoError(t, err)
	return a
}

// plannedItinerary returns a two-day itinerary with a on day 2.
func plannedItinerary(t *testing.T, name string, a domain.Attraction) domain.Itinerary {
	t.Helper()
	it, err := parser.ParseItinerary(parser.ItineraryInput{Name: name, StartDate: "2026-12-24", Days: "2"})
	require.NoError(t, err)
	start, end, err := parser.ParseTimeSlot("1000", "1230")
	require.NoError(t, err)
	ia, err := domain.NewItineraryAttraction(a, start, end)
	require.NoError(t, err)
	it, err = it.WithAttraction(domain.FromOneBased(2), ia)
	require.NoError(t, err)
	return it
}

func requireSameAttractions(t *testing.T, want, got []domain.Attraction) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, want[i].Equal(got[i]), "attraction %d: want %v, got %v", i, want[i], got[i])
	}
}

func requireSameItineraries(t *testing.T, want, got []domain.Itinerary) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, want[i].Equal(got[i]), "itinerary %d: want %v, got %v", i, want[i], got[i])
	}
}
