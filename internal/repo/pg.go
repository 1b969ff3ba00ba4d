package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trackpad/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test. Begin on a
// pgx.Tx opens a savepoint, so Save stays atomic either way.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// snapshotTable names one of the snapshot tables created by the migrations.
// Values are constants; they are never built from input.
type snapshotTable string

const (
	attractionsTable snapshotTable = "attractions"
	itinerariesTable snapshotTable = "itineraries"
)

// snapshotRow is one element of a snapshot: its position in the list, its
// display name (for ad-hoc SQL), and the JSON record.
type snapshotRow struct {
	name   string
	record any
}

// saveSnapshot replaces every row of table with rows, in one transaction.
func saveSnapshot(ctx context.Context, conn db, table snapshotTable, rows []snapshotRow) error {
	return pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM "+string(table)); err != nil {
			return fmt.Errorf("%w: clear %s: %w", domain.ErrPersistence, table, err)
		}
		if len(rows) == 0 {
			return nil
		}

		q := "INSERT INTO " + string(table) + ` (id, position, name, record)
			VALUES (@id, @position, @name, @record)`

		batch := &pgx.Batch{}
		for i, r := range rows {
			rec, err := json.Marshal(r.record)
			if err != nil {
				return fmt.Errorf("%w: encode %s row %d: %w", domain.ErrPersistence, table, i, err)
			}
			batch.Queue(q, pgx.NamedArgs{
				"id":       uuid.New(),
				"position": i,
				"name":     r.name,
				"record":   rec,
			})
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("%w: insert %s: %w", domain.ErrPersistence, table, err)
		}
		return nil
	})
}

// loadSnapshot returns the raw JSON records of table in list order.
func loadSnapshot(ctx context.Context, conn db, table snapshotTable) ([][]byte, error) {
	rows, err := conn.Query(ctx, "SELECT record FROM "+string(table)+" ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", domain.ErrPersistence, table, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("%w: scan %s: %w", domain.ErrPersistence, table, err)
	}
	return records, nil
}

// decodeRecords unmarshals each raw record into a fresh R.
func decodeRecords[R any](raw [][]byte) ([]R, error) {
	out := make([]R, len(raw))
	for i, b := range raw {
		if err := json.Unmarshal(b, &out[i]); err != nil {
			return nil, fmt.Errorf("%w: decode row %d: %w", domain.ErrPersistence, i, err)
		}
	}
	return out, nil
}
