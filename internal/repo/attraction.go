package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/trackpad/internal/domain"
)

// pgAttractionRepo is the Postgres implementation of AttractionStore.
type pgAttractionRepo struct {
	db db
}

// NewAttractionRepo constructs an AttractionStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewAttractionRepo(db db) AttractionStore {
	return &pgAttractionRepo{db: db}
}

// Load reads the attractions table in position order.
func (r *pgAttractionRepo) Load(ctx context.Context) ([]domain.Attraction, error) {
	raw, err := loadSnapshot(ctx, r.db, attractionsTable)
	if err != nil {
		return nil, fmt.Errorf("repo.AttractionRepo.Load: %w", err)
	}
	recs, err := decodeRecords[attractionRecord](raw)
	if err != nil {
		return nil, fmt.Errorf("repo.AttractionRepo.Load: %w", err)
	}
	as, err := decodeAttractions(recs)
	if err != nil {
		return nil, fmt.Errorf("repo.AttractionRepo.Load: %w", err)
	}
	return as, nil
}

// Save rewrites the attractions table to hold exactly as.
func (r *pgAttractionRepo) Save(ctx context.Context, as []domain.Attraction) error {
	rows := make([]snapshotRow, len(as))
	for i, a := range as {
		rows[i] = snapshotRow{name: a.Name.String(), record: toAttractionRecord(a)}
	}
	if err := saveSnapshot(ctx, r.db, attractionsTable, rows); err != nil {
		return fmt.Errorf("repo.AttractionRepo.Save: %w", err)
	}
	return nil
}
