// Package repo persists TrackPad's lists as whole-list snapshots.
// Each list has a store interface with a JSON-file implementation for local
// use and a Postgres implementation for the server. Preferences live in a
// YAML file. No business logic lives here, only encoding and I/O.
package repo

import (
	"context"

	"github.com/pkordes/trackpad/internal/domain"
)

// AttractionStore loads and saves the full attraction list.
// Errors wrap domain.ErrPersistence.
type AttractionStore interface {
	// Load returns the saved attractions in order. A store that has never
	// been saved returns an empty list.
	Load(ctx context.Context) ([]domain.Attraction, error)

	// Save replaces the saved snapshot with as.
	Save(ctx context.Context, as []domain.Attraction) error
}

// ItineraryStore loads and saves the full itinerary list.
// Errors wrap domain.ErrPersistence.
type ItineraryStore interface {
	// Load returns the saved itineraries in order. A store that has never
	// been saved returns an empty list.
	Load(ctx context.Context) ([]domain.Itinerary, error)

	// Save replaces the saved snapshot with its.
	Save(ctx context.Context, its []domain.Itinerary) error
}
