package runs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/models/store"
	"github.com/de-tools/growth-scorecard/pkg/store/duckdb"
)

// Store keeps the history of snapshot runs.
type Store interface {
	Record(ctx context.Context, run domain.SnapshotRun) error
	ListRuns(ctx context.Context, limit int) ([]domain.SnapshotRun, error)
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{
		db: db,
	}, nil
}

// Record inserts the run or updates it when the id already exists.
func (s *defaultStore) Record(ctx context.Context, run domain.SnapshotRun) error {
	r := adapters.MapDomainSnapshotRunToStore(run)

	var (
		finished sql.NullTime
		runErr   sql.NullString
	)
	if r.FinishedAt != nil {
		finished = sql.NullTime{Time: *r.FinishedAt, Valid: true}
	}
	if r.Error != nil {
		runErr = sql.NullString{String: *r.Error, Valid: true}
	}

	_, err := duckdb.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT OR REPLACE INTO snapshot_runs (id, started_at, finished_at, point_date, error)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt, finished, r.PointDate, runErr,
	)
	if err != nil {
		return fmt.Errorf("record snapshot run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns the most recent runs first. A limit of 0 returns every run.
func (s *defaultStore) ListRuns(ctx context.Context, limit int) ([]domain.SnapshotRun, error) {
	query := `SELECT id, started_at, finished_at, point_date, error FROM snapshot_runs ORDER BY started_at DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshot runs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SnapshotRun, 0)
	for rows.Next() {
		var (
			r        store.SnapshotRun
			finished sql.NullTime
			runErr   sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.StartedAt, &finished, &r.PointDate, &runErr); err != nil {
			return nil, fmt.Errorf("scan snapshot run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		if runErr.Valid {
			msg := runErr.String
			r.Error = &msg
		}
		out = append(out, adapters.MapStoreSnapshotRunToDomain(r))
	}
	return out, rows.Err()
}
