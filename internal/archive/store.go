// Copyright Skyarchive Labs, 2026. All rights reserved.

// Package archive persists fetched result tables in a local SQLite
// database. The archive is write-only from the query path: saving a run
// never influences later queries, it only records what was fetched.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/skyarchive/gator/internal/gator"
	"github.com/skyarchive/gator/pkg/types"
)

// Store manages the archive SQLite database.
type Store struct {
	db *sql.DB
}

// Run describes one archived query.
type Run struct {
	ID        int64     `json:"id"`
	Catalog   string    `json:"catalog"`
	Spatial   string    `json:"spatial"`
	Payload   string    `json:"payload"`
	FetchedAt time.Time `json:"fetched_at"`
	RowCount  int       `json:"row_count"`
}

// Open opens or creates the archive database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			catalog TEXT NOT NULL,
			spatial TEXT NOT NULL,
			payload TEXT NOT NULL,
			fetched_at TEXT NOT NULL,
			row_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS columns (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			idx INTEGER NOT NULL,
			name TEXT NOT NULL,
			datatype TEXT NOT NULL,
			unit TEXT,
			PRIMARY KEY (run_id, idx)
		)`,
		`CREATE TABLE IF NOT EXISTS rows (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			idx INTEGER NOT NULL,
			cells TEXT NOT NULL,
			PRIMARY KEY (run_id, idx)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Save archives one query run: the payload that was sent and the table
// that came back. Returns the run id.
func (s *Store) Save(ctx context.Context, payload gator.Payload, table *types.Table) (int64, error) {
	if table == nil {
		return 0, fmt.Errorf("no table to archive")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (catalog, spatial, payload, fetched_at, row_count) VALUES (?, ?, ?, ?, ?)`,
		payload["catalog"], payload["spatial"], payload.Values().Encode(),
		time.Now().UTC().Format(time.RFC3339), table.NumRows(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for i, col := range table.Columns {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO columns (run_id, idx, name, datatype, unit) VALUES (?, ?, ?, ?, ?)`,
			runID, i, col.Name, string(col.Datatype), col.Unit,
		); err != nil {
			return 0, fmt.Errorf("inserting column %q: %w", col.Name, err)
		}
	}

	for i, row := range table.Rows {
		cells, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("encoding row %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rows (run_id, idx, cells) VALUES (?, ?, ?)`,
			runID, i, string(cells),
		); err != nil {
			return 0, fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs lists archived runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, catalog, spatial, payload, fetched_at, row_count FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var fetched string
		if err := rows.Scan(&r.ID, &r.Catalog, &r.Spatial, &r.Payload, &fetched, &r.RowCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, fetched); parseErr == nil {
			r.FetchedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
