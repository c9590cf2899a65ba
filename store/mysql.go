package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is a MySQL/MariaDB-backed Store, for a regexctl deployment
// shared across processes that wants its pattern cache and match
// telemetry centralized.
//
// The DSN format matches the driver's: user:pass@tcp(host:port)/dbname.
// Callers should pass the DSN via an environment variable rather than a
// literal in source.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore opens a MySQL connection and ensures its schema exists.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	s := &MySQLStore{db: db}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *MySQLStore) createTables(ctx context.Context) error {
	cacheTable := `
		CREATE TABLE IF NOT EXISTS pattern_cache (
			pattern    VARCHAR(1024) NOT NULL,
			node_count INT NOT NULL,
			anchored   TINYINT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			PRIMARY KEY (pattern(255))
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci
	`
	if _, err := s.db.ExecContext(ctx, cacheTable); err != nil {
		return err
	}

	matchesTable := `
		CREATE TABLE IF NOT EXISTS match_telemetry (
			id          VARCHAR(64) PRIMARY KEY,
			pattern     VARCHAR(1024) NOT NULL,
			text_len    INT NOT NULL,
			matched     TINYINT NOT NULL,
			start_pos   INT NOT NULL,
			end_pos     INT NOT NULL,
			outcome     VARCHAR(32) NOT NULL,
			duration_ns BIGINT NOT NULL,
			ran_at      TIMESTAMP NOT NULL,
			INDEX idx_match_ran_at (ran_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci
	`
	_, err := s.db.ExecContext(ctx, matchesTable)
	return err
}

func (s *MySQLStore) SaveCompiled(ctx context.Context, rec CacheRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pattern_cache (pattern, node_count, anchored, created_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE node_count = VALUES(node_count),
			anchored = VALUES(anchored), created_at = VALUES(created_at)
	`, rec.Pattern, rec.NodeCount, boolToInt(rec.Anchored), rec.CreatedAt)
	return err
}

func (s *MySQLStore) LoadCompiled(ctx context.Context, pattern string) (CacheRecord, error) {
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

func (s *MySQLStore) RecordMatch(ctx context.Context, rec MatchTelemetry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO match_telemetry (id, pattern, text_len, matched, start_pos, end_pos, outcome, duration_ns, ran_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Pattern, rec.TextLen, boolToInt(rec.Matched), rec.Start, rec.End, rec.Outcome, rec.Duration.Nanoseconds(), rec.RanAt)
	return err
}

func (s *MySQLStore) RecentMatches(ctx context.Context, limit int) ([]MatchTelemetry, error) {
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

func (s *MySQLStore) Close() error {
	return s.db.Close()
}
