/*
Package postgres provides a PostgreSQL-backed implementation of the history store.

PURPOSE:
  Implements generic.CalculationStore on a pgx connection pool, for
  deployments that share history across server instances. Selected by
  cmd/server when the database URL is a postgres:// URL.

STORAGE FORMAT:
  Money is NUMERIC, passed as decimal strings in both directions so no value
  goes through float64. Timestamps are TIMESTAMPTZ.

APPEND-ONLY ENFORCEMENT:
  Same contract as store/sqlite: no UPDATE, DELETE only via DeleteBefore and
  Reset, duplicate IDs surface as generic.ErrDuplicateCalculation.

SEE ALSO:
  - generic/store.go: Interface definition
  - store/sqlite/sqlite.go: SQLite implementation
*/
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
)

const uniqueViolation = "23505"

// Store implements generic.CalculationStore using PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

var _ generic.CalculationStore = (*Store)(nil)

// New connects to databaseURL and creates the schema if needed.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	store := &Store{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		input_value NUMERIC NOT NULL,
		basic_da_pct NUMERIC NOT NULL,
		result_value NUMERIC NOT NULL,
		request_id TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		seq BIGSERIAL
	);
	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_calculations_kind_created_at
		ON calculations(kind, created_at DESC);
	`)
	return err
}

// =============================================================================
// CALCULATION STORE (generic.CalculationStore interface)
// =============================================================================

// Append adds a record to the history.
func (s *Store) Append(ctx context.Context, calc generic.Calculation) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO calculations
		(id, kind, input_value, basic_da_pct, result_value, request_id, created_at)
		VALUES ($1, $2, $3::text::numeric, $4::text::numeric, $5::text::numeric, NULLIF($6::text, ''), $7)
	`,
		string(calc.ID),
		string(calc.Kind),
		calc.Input.String(),
		calc.BasicDAPercent.String(),
		calc.Result.String(),
		calc.RequestID,
		calc.CreatedAt.UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return generic.ErrDuplicateCalculation
		}
		return fmt.Errorf("failed to append calculation: %w", err)
	}
	return nil
}

const selectColumns = `
	SELECT id, kind, input_value::text, basic_da_pct::text, result_value::text,
	       COALESCE(request_id, ''), created_at
	FROM calculations
`

// Get returns a single record.
func (s *Store) Get(ctx context.Context, id generic.CalculationID) (generic.Calculation, error) {
	row := s.pool.QueryRow(ctx, selectColumns+" WHERE id = $1", string(id))
	c, err := scanCalculation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return generic.Calculation{}, generic.ErrCalculationNotFound
	}
	return c, err
}

// List returns records newest first.
func (s *Store) List(ctx context.Context, filter generic.CalculationFilter) ([]generic.Calculation, error) {
	query := selectColumns
	args := []any{}
	if filter.Kind != "" {
		query += " WHERE kind = $1"
		args = append(args, string(filter.Kind))
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, seq DESC LIMIT $%d", len(args)+1)
	args = append(args, filter.EffectiveLimit())

	rows, err := s.pool.Query(ctx, query, args...)
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
	tag, err := s.pool.Exec(ctx, "DELETE FROM calculations WHERE created_at < $1", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune calculations: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Reset clears all data.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM calculations")
	return err
}

func scanCalculation(row pgx.Row) (generic.Calculation, error) {
	var (
		c                      generic.Calculation
		id, kind, requestID    string
		input, percent, result string
		createdAt              time.Time
	)
	if err := row.Scan(&id, &kind, &input, &percent, &result, &requestID, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return generic.Calculation{}, err
		}
		return generic.Calculation{}, fmt.Errorf("failed to scan calculation: %w", err)
	}

	c.ID = generic.CalculationID(id)
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
	c.RequestID = requestID
	c.CreatedAt = createdAt.UTC()
	return c, nil
}
