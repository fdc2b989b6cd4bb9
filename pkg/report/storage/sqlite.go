package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"compat-hq/licensegate/pkg/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id                 TEXT PRIMARY KEY,
	created_at         INTEGER NOT NULL,
	target             TEXT NOT NULL,
	main_license       TEXT NOT NULL,
	issues             TEXT NOT NULL,
	compatible_count   INTEGER NOT NULL,
	incompatible_count INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
CREATE INDEX IF NOT EXISTS idx_reports_target ON reports(target);
`

// SQLiteConfig contains configuration for the SQLite report store.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is how long to wait when the database is locked.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		Path:        "data/reports.db",
		BusyTimeout: 5 * time.Second,
	}
}

// SQLiteStore implements report.Store on a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (and if necessary creates) the report database
// at the configured path, applying the schema and enabling WAL mode.
func NewSQLiteStore(config SQLiteConfig) (*SQLiteStore, error) {
	if config.Path == "" {
		config = DefaultSQLiteConfig()
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = DefaultSQLiteConfig().BusyTimeout
	}

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, report.NewStorageError("sqlite", "open", err)
	}

	pragmas := fmt.Sprintf(
		"PRAGMA journal_mode=WAL; PRAGMA busy_timeout=%d; PRAGMA foreign_keys=ON;",
		config.BusyTimeout.Milliseconds(),
	)
	if _, err := db.Exec(pragmas); err != nil {
		db.Close()
		return nil, report.NewStorageError("sqlite", "configure", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, report.NewStorageError("sqlite", "migrate", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: slog.Default().With("component", "report.storage.sqlite"),
	}, nil
}

// Save persists a report.
func (s *SQLiteStore) Save(ctx context.Context, r *report.Report) error {
	issues, err := json.Marshal(r.Issues)
	if err != nil {
		return report.NewStorageError("sqlite", "save", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, created_at, target, main_license, issues, compatible_count, incompatible_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UnixNano(), r.Target, r.MainLicense,
		string(issues), r.CompatibleCount, r.IncompatibleCount,
	)
	if err != nil {
		return report.NewStorageError("sqlite", "save", err)
	}
	return nil
}

// Get retrieves a report by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*report.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, target, main_license, issues, compatible_count, incompatible_count
		FROM reports WHERE id = ?`, id)

	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, report.ErrNotFound
	}
	if err != nil {
		return nil, report.NewStorageError("sqlite", "get", err)
	}
	return r, nil
}

// List returns reports matching the query, newest first.
func (s *SQLiteStore) List(ctx context.Context, q report.Query) ([]*report.Report, error) {
	query := `
		SELECT id, created_at, target, main_license, issues, compatible_count, incompatible_count
		FROM reports WHERE created_at >= ?`
	args := []any{q.Since.UnixNano()}

	if q.Target != "" {
		query += " AND target = ?"
		args = append(args, q.Target)
	}
	query += " ORDER BY created_at DESC"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, report.NewStorageError("sqlite", "list", err)
	}
	defer rows.Close()

	var results []*report.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, report.NewStorageError("sqlite", "list", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, report.NewStorageError("sqlite", "list", err)
	}
	return results, nil
}

// DeleteOlderThan removes reports created before the cutoff.
func (s *SQLiteStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM reports WHERE created_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, report.NewStorageError("sqlite", "delete", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, report.NewStorageError("sqlite", "delete", err)
	}
	if deleted > 0 {
		s.logger.Info("pruned reports", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}

// Count returns the total number of stored reports.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&n); err != nil {
		return 0, report.NewStorageError("sqlite", "count", err)
	}
	return n, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*report.Report, error) {
	var r report.Report
	var createdAt int64
	var issuesJSON string

	err := row.Scan(&r.ID, &createdAt, &r.Target, &r.MainLicense,
		&issuesJSON, &r.CompatibleCount, &r.IncompatibleCount)
	if err != nil {
		return nil, err
	}

	r.CreatedAt = time.Unix(0, createdAt).UTC()
	if err := json.Unmarshal([]byte(issuesJSON), &r.Issues); err != nil {
		return nil, fmt.Errorf("corrupt issues payload for report %s: %w", r.ID, err)
	}
	return &r, nil
}

// interface guard
var _ report.Store = (*SQLiteStore)(nil)
