/*
Package sqlite provides a SQLite-backed implementation of the history store.

PURPOSE:
  Implements generic.CalculationStore using SQLite. The default backend for
  cmd/server; pass ":memory:" for a throwaway database.

APPEND-ONLY ENFORCEMENT:
  - No UPDATE statements on the calculations table
  - DELETE only via DeleteBefore (retention) and Reset (admin)
  - Duplicate IDs surface as generic.ErrDuplicateCalculation

KEY TABLES:
  calculations: One row per computation (inputs and headline result)

STORAGE FORMAT:
  Money is stored as decimal TEXT so values round-trip exactly. Timestamps
  are fixed-width UTC text so lexical order matches time order.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety, on top of WAL mode.

USAGE:
  store, err := sqlite.New("./data/history.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - generic/store.go: Interface definition
  - generic/store/memory.go: In-memory implementation for testing
  - store/postgres/postgres.go: PostgreSQL implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
)

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store implements generic.CalculationStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ generic.CalculationStore = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each :memory: connection is its own database
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		input_value TEXT NOT NULL,
		basic_da_pct TEXT NOT NULL,
		result_value TEXT NOT NULL,
		request_id TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_calculations_kind_created_at
		ON calculations(kind, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CALCULATION STORE (generic.CalculationStore interface)
// =============================================================================

// Append adds a record to the history.
func (s *Store) Append(ctx context.Context, calc generic.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO calculations
		(id, kind, input_value, basic_da_pct, result_value, request_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		calc.ID,
		calc.Kind,
		calc.Input.String(),
		calc.BasicDAPercent.String(),
		calc.Result.String(),
		nullString(calc.RequestID),
		calc.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return generic.ErrDuplicateCalculation
		}
		return fmt.Errorf("failed to append calculation: %w", err)
	}

	return nil
}

// Get returns a single record.
func (s *Store) Get(ctx context.Context, id generic.CalculationID) (generic.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, input_value, basic_da_pct, result_value, request_id, created_at
		FROM calculations
		WHERE id = ?
	`, id)
	if err != nil {
		return generic.Calculation{}, fmt.Errorf("failed to query calculation: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return generic.Calculation{}, err
		}
		return generic.Calculation{}, generic.ErrCalculationNotFound
	}
	return scanCalculation(rows)
}

// List returns records newest first.
func (s *Store) List(ctx context.Context, filter generic.CalculationFilter) ([]generic.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, kind, input_value, basic_da_pct, result_value, request_id, created_at
		FROM calculations
	`
	args := []any{}
	if filter.Kind != "" {
		query += " WHERE kind = ?"
		args = append(args, filter.Kind)
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, filter.EffectiveLimit())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	calcs := []generic.Calculation{}
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, c)
	}
	return calcs, rows.Err()
}

// DeleteBefore removes records created before cutoff.
func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM calculations WHERE created_at < ?",
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune calculations: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Reset clears all data.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM calculations")
	return err
}

func scanCalculation(rows *sql.Rows) (generic.Calculation, error) {
	var (
		c                          generic.Calculation
		kind                       string
		input, percent, result, at string
		requestID                  sql.NullString
	)
	if err := rows.Scan(&c.ID, &kind, &input, &percent, &result, &requestID, &at); err != nil {
		return generic.Calculation{}, fmt.Errorf("failed to scan calculation: %w", err)
	}

	createdAt, err := time.Parse(timeLayout, at)
	if err != nil {
		return generic.Calculation{}, fmt.Errorf("bad created_at %q: %w", at, err)
	}

	c.Kind = generic.CalculationKind(kind)
	for _, col := range []struct {
		dst *decimal.Decimal
		raw string
	}{{&c.Input, input}, {&c.BasicDAPercent, percent}, {&c.Result, result}} {
		v, err := decimal.NewFromString(col.raw)
		if err != nil {
			return generic.Calculation{}, fmt.Errorf("bad decimal column %q: %w", col.raw, err)
		}
		*col.dst = v
	}
	c.RequestID = requestID.String
	c.CreatedAt = createdAt
	return c, nil
}

// Helper functions

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func isUniqueConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
