// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records conversion outcomes in a SQLite database so that
// past runs can be listed and exported.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/txt2md/pkg/types"
)

// DefaultDBPath is used when the configuration leaves the path empty.
const DefaultDBPath = ".txt2md/history.db"

// DefaultLimit caps List when the caller passes a non-positive limit.
const DefaultLimit = 50

// Store manages the conversion history database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at cfg.DBPath and creates
// the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			output TEXT NOT NULL,
			format TEXT NOT NULL,
			backend TEXT,
			status TEXT NOT NULL,
			bytes INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_converted_at ON conversions(converted_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one conversion outcome. It satisfies convert.Recorder.
func (s *Store) Record(ctx context.Context, rec types.ConversionRecord) error {
	at := rec.ConvertedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source, output, format, backend, status, bytes, error, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Source, rec.Output, string(rec.Format), rec.Backend, string(rec.Status),
		rec.Bytes, rec.Error, at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", rec.Source, err)
	}
	return nil
}

// List returns up to limit records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]types.ConversionRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, output, format, COALESCE(backend, ''), status, bytes,
		        COALESCE(error, ''), converted_at
		 FROM conversions ORDER BY converted_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.ConversionRecord
	for rows.Next() {
		var (
			rec            types.ConversionRecord
			format, status string
			at             string
		)
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Output, &format, &rec.Backend,
			&status, &rec.Bytes, &rec.Error, &at); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		rec.Format = types.Format(format)
		rec.Status = types.ConversionStatus(status)
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			rec.ConvertedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
