package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite-backed Store: a single file database good for
// local development, prototyping, or a single regexctl process that
// wants its cache and telemetry to survive a restart.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if necessary) a SQLite database at
// path and ensures its schema exists. Pass ":memory:" for an ephemeral
// in-process database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) createTables(ctx context.Context) error {
	cacheTable := `
		CREATE TABLE IF NOT EXISTS pattern_cache (
			pattern    TEXT PRIMARY KEY,
			node_count INTEGER NOT NULL,
			anchored   INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, cacheTable); err != nil {
		return err
	}

	matchesTable := `
		CREATE TABLE IF NOT EXISTS match_telemetry (
			id          TEXT PRIMARY KEY,
			pattern     TEXT NOT NULL,
			text_len    INTEGER NOT NULL,
			matched     INTEGER NOT NULL,
			start_pos   INTEGER NOT NULL,
			end_pos     INTEGER NOT NULL,
			outcome     TEXT NOT NULL,
			duration_ns INTEGER NOT NULL,
			ran_at      TIMESTAMP NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, matchesTable); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_match_ran_at ON match_telemetry(ran_at)")
	return err
}

func (s *SQLiteStore) SaveCompiled(ctx context.Context, rec CacheRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pattern_cache (pattern, node_count, anchored, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(pattern) DO UPDATE SET node_count = excluded.node_count,
			anchored = excluded.anchored, created_at = excluded.created_at
	`, rec.Pattern, rec.NodeCount, boolToInt(rec.Anchored), rec.CreatedAt)
	return err
}

func (s *SQLiteStore) LoadCompiled(ctx context.Context, pattern string) (CacheRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT pattern, node_count, anchored, created_at FROM pattern_cache WHERE pattern = ?
	`, pattern)

	var rec CacheRecord
	var anchored int
	if err := row.Scan(&rec.Pattern, &rec.NodeCount, &anchored, &rec.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return CacheRecord{}, ErrNotFound
		}
		return CacheRecord{}, err
	}
	rec.Anchored = anchored != 0
	return rec, nil
}

func (s *SQLiteStore) RecordMatch(ctx context.Context, rec MatchTelemetry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO match_telemetry (id, pattern, text_len, matched, start_pos, end_pos, outcome, duration_ns, ran_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Pattern, rec.TextLen, boolToInt(rec.Matched), rec.Start, rec.End, rec.Outcome, rec.Duration.Nanoseconds(), rec.RanAt)
	return err
}

func (s *SQLiteStore) RecentMatches(ctx context.Context, limit int) ([]MatchTelemetry, error) {
	query := `
		SELECT id, pattern, text_len, matched, start_pos, end_pos, outcome, duration_ns, ran_at
		FROM match_telemetry ORDER BY ran_at DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchTelemetry
	for rows.Next() {
		var rec MatchTelemetry
		var matched int
		var durationNs int64
		if err := rows.Scan(&rec.ID, &rec.Pattern, &rec.TextLen, &matched, &rec.Start, &rec.End, &rec.Outcome, &durationNs, &rec.RanAt); err != nil {
			return nil, err
		}
		rec.Matched = matched != 0
		rec.Duration = time.Duration(durationNs)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
