package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/migrations"
)

// Stores bundles the two list stores chosen at startup.
type Stores struct {
	Attractions AttractionStore
	Itineraries ItineraryStore

	close func()
}

// Close releases the database pool, if any.
func (s Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// Load reads both snapshots.
func (s Stores) Load(ctx context.Context) ([]domain.Attraction, []domain.Itinerary, error) {
	as, err := s.Attractions.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	its, err := s.Itineraries.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return as, its, nil
}

// Save writes both snapshots.
func (s Stores) Save(ctx context.Context, as []domain.Attraction, its []domain.Itinerary) error {
	if err := s.Attractions.Save(ctx, as); err != nil {
		return err
	}
	return s.Itineraries.Save(ctx, its)
}

// OpenFiles returns JSON file stores at the paths named in prefs.
func OpenFiles(prefs domain.UserPrefs) Stores {
	return Stores{
		Attractions: NewAttractionFile(prefs.AttractionListPath),
		Itineraries: NewItineraryFile(prefs.ItineraryListPath),
	}
}

// OpenPostgres connects to databaseURL, applies pending migrations and
// returns Postgres-backed stores. Call Close when done.
func OpenPostgres(ctx context.Context, databaseURL string, log *slog.Logger) (Stores, error) {
	if log == nil {
		log = slog.Default()
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return Stores{}, fmt.Errorf("repo.OpenPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return Stores{}, fmt.Errorf("repo.OpenPostgres: ping: %w", err)
	}

	// goose drives database/sql; this *sql.DB borrows connections from the
	// pool and keeps none idle, so closing the pool releases everything.
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		pool.Close()
		return Stores{}, fmt.Errorf("repo.OpenPostgres: goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		pool.Close()
		return Stores{}, fmt.Errorf("repo.OpenPostgres: migrate: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied", "version", r.Source.Version, "path", r.Source.Path)
	}

	return Stores{
		Attractions: NewAttractionRepo(pool),
		Itineraries: NewItineraryRepo(pool),
		close:       pool.Close,
	}, nil
}
