package model

import (
	"slices"
	"strings"

	"github.com/pkordes/trackpad/internal/domain"
)

// Predicate decides whether an element is visible in a FilteredView.
type Predicate[T any] func(T) bool

// ShowAll accepts every element.
func ShowAll[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// AttractionNameContains matches attractions whose name contains any of
// keywords as a whole word, ignoring case.
func AttractionNameContains(keywords []string) Predicate[domain.Attraction] {
	return func(a domain.Attraction) bool {
		return containsAnyWord(a.Name.String(), keywords)
	}
}

// AttractionHasTag matches attractions carrying at least one of tags.
func AttractionHasTag(tags []domain.Tag) Predicate[domain.Attraction] {
	return func(a domain.Attraction) bool {
		return slices.ContainsFunc(tags, a.Tags.Has)
	}
}

// AttractionVisited matches attractions whose visited flag equals visited.
func AttractionVisited(visited bool) Predicate[domain.Attraction] {
	return func(a domain.Attraction) bool { return a.Visited == visited }
}

// ItineraryNameContains matches itineraries whose name contains any of
// keywords as a whole word, ignoring case.
func ItineraryNameContains(keywords []string) Predicate[domain.Itinerary] {
	return func(it domain.Itinerary) bool {
		return containsAnyWord(it.Name.String(), keywords)
	}
}

// And matches when every predicate matches. With no predicates it matches
// everything.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return func(x T) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

func containsAnyWord(text string, keywords []string) bool {
	words := strings.Fields(text)
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		for _, w := range words {
			if strings.EqualFold(w, k) {
				return true
			}
		}
	}
	return false
}

// AttractionQuery is the set of attraction filters a find can combine.
// Empty fields do not filter.
type AttractionQuery struct {
	Keywords []string
	Tags     []domain.Tag
	Visited  *bool
}

// IsEmpty reports whether q filters nothing.
func (q AttractionQuery) IsEmpty() bool {
	return len(q.Keywords) == 0 && len(q.Tags) == 0 && q.Visited == nil
}

// Predicate builds the conjunction of q's filters.
func (q AttractionQuery) Predicate() Predicate[domain.Attraction] {
	var ps []Predicate[domain.Attraction]
	if len(q.Keywords) > 0 {
		ps = append(ps, AttractionNameContains(q.Keywords))
	}
	if len(q.Tags) > 0 {
		ps = append(ps, AttractionHasTag(q.Tags))
	}
	if q.Visited != nil {
		ps = append(ps, AttractionVisited(*q.Visited))
	}
	return And(ps...)
}
