package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/trackpad/internal/domain"
)

// pgItineraryRepo is the Postgres implementation of ItineraryStore.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryStore backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryStore {
	return &pgItineraryRepo{db: db}
}

// Load reads the itineraries table in position order.
func (r *pgItineraryRepo) Load(ctx context.Context) ([]domain.Itinerary, error) {
	raw, err := loadSnapshot(ctx, r.db, itinerariesTable)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.Load: %w", err)
	}
	recs, err := decodeRecords[itineraryRecord](raw)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.Load: %w", err)
	}
	its, err := decodeItineraries(recs)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.Load: %w", err)
	}
	return its, nil
}

// Save rewrites the itineraries table to hold exactly its.
func (r *pgItineraryRepo) Save(ctx context.Context, its []domain.Itinerary) error {
	rows := make([]snapshotRow, len(its))
	for i, it := range its {
		rows[i] = snapshotRow{name: it.Name.String(), record: toItineraryRecord(it)}
	}
	if err := saveSnapshot(ctx, r.db, itinerariesTable, rows); err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Save: %w", err)
	}
	return nil
}
