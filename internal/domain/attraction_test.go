package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trackpad/internal/domain"
)

// must unwraps a constructor result for fixtures built from known-good input.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// attractionFixture returns a valid Attraction named name.
func attractionFixture(t *testing.T, name string) domain.Attraction {
	t.Helper()
	return domain.NewAttraction(
		must(domain.NewName(name)),
		must(domain.NewPhone("91234567")),
		must(domain.NewEmail("info@zoo.sg")),
		must(domain.NewAddress("80 Mandai Lake Rd")),
		must(domain.NewDescription("Open-air zoo")),
		must(domain.NewLocation("Singapore")),
		must(domain.NewOpeningHours("0830-1800")),
		must(domain.NewPriceRange("MEDIUM")),
		must(domain.NewRating("4.5")),
		domain.NewTagSet(must(domain.NewTag("animals"))),
	)
}

func TestAttraction_NewIsUnvisited(t *testing.T) {
	a := attractionFixture(t, "Zoo")
	assert.False(t, a.Visited)
}

func TestAttraction_IsSameByNormalizedName(t *testing.T) {
	a := attractionFixture(t, "Zoo")
	b := attractionFixture(t, "ZOO")
	b.Phone = must(domain.NewPhone("65555555"))

	assert.True(t, a.IsSame(b))
	assert.False(t, a.Equal(b))
	assert.False(t, a.IsSame(attractionFixture(t, "Night Safari")))
}

func TestAttraction_EqualIsStructural(t *testing.T) {
	a := attractionFixture(t, "Zoo")
	b := attractionFixture(t, "Zoo")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(a.MarkVisited()))
	assert.False(t, a.Equal(a.WithTags(domain.NewTagSet())))
}

func TestAttraction_MarkVisitedLeavesOriginal(t *testing.T) {
	a := attractionFixture(t, "Zoo")

	visited := a.MarkVisited()

	assert.True(t, visited.Visited)
	assert.False(t, a.Visited)
	assert.True(t, a.IsSame(visited))
}
