// Package sqlite persists pattern records in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
	"github.com/cognicore/styleprof/pkg/styleprof/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite pattern store with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency between learners and readers
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS patterns (
	id TEXT PRIMARY KEY,
	pattern_type TEXT NOT NULL,
	platform TEXT NOT NULL DEFAULT '',
	data TEXT NOT NULL,
	usage_count INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_patterns_scope ON patterns(pattern_type, platform);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// GetPatterns returns records matching the selectors, oldest first.
func (s *sqliteStore) GetPatterns(ctx context.Context, typ pattern.Type, platform string) ([]pattern.Record, error) {
	query := `SELECT id, pattern_type, platform, data, usage_count, created_at
		FROM patterns WHERE platform = ?`
	args := []interface{}{platform}
	if typ != "" {
		query += ` AND pattern_type = ?`
		args = append(args, string(typ))
	}
	query += ` ORDER BY created_at, id`

	return s.queryRecords(ctx, query, args...)
}

// ListPatterns returns every stored record, oldest first.
func (s *sqliteStore) ListPatterns(ctx context.Context) ([]pattern.Record, error) {
	return s.queryRecords(ctx, `SELECT id, pattern_type, platform, data, usage_count, created_at
		FROM patterns ORDER BY created_at, id`)
}

func (s *sqliteStore) queryRecords(ctx context.Context, query string, args ...interface{}) ([]pattern.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pattern.Record
	for rows.Next() {
		var (
			rec       pattern.Record
			typ       string
			raw       string
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &typ, &rec.Platform, &raw, &rec.UsageCount, &createdAt); err != nil {
			return nil, err
		}
		rec.Type = pattern.Type(typ)
		data, err := pattern.UnmarshalData(rec.Type, []byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode pattern %s: %w", rec.ID, err)
		}
		rec.Data = data
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("decode pattern %s: %w", rec.ID, err)
		}
		rec.CreatedAt = ts
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpsertPattern inserts a record, or increments the stored usage count when
// the ID already exists. The read-modify-write runs in one transaction so
// concurrent learners cannot lose an increment.
func (s *sqliteStore) UpsertPattern(ctx context.Context, rec pattern.Record) (pattern.Record, error) {
	if rec.ID == "" {
		return pattern.Record{}, fmt.Errorf("sqlite: %w: record ID required", internalerr.ErrInvalidInput)
	}
	raw, err := pattern.MarshalData(rec.Data)
	if err != nil {
		return pattern.Record{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return pattern.Record{}, err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx, `SELECT usage_count FROM patterns WHERE id = ?`, rec.ID).Scan(&count)
	switch {
	case err == sql.ErrNoRows:
		if rec.UsageCount < 1 {
			rec.UsageCount = 1
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now().UTC()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO patterns (id, pattern_type, platform, data, usage_count, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.ID, string(rec.Type), rec.Platform, string(raw), rec.UsageCount,
			rec.CreatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return pattern.Record{}, err
		}
	case err != nil:
		return pattern.Record{}, err
	default:
		rec.UsageCount = count + 1
		_, err = tx.ExecContext(ctx,
			`UPDATE patterns SET usage_count = usage_count + 1, data = ? WHERE id = ?`,
			string(raw), rec.ID)
		if err != nil {
			return pattern.Record{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return pattern.Record{}, err
	}
	return rec, nil
}
