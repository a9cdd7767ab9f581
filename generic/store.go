/*
store.go - Persistence interface for calculation history

PURPOSE:
  Defines the interface between the API layer and the database for the
  calculation history. History is a record of what was computed; it is never
  read back to answer a calculation, every value is recomputed per request.

APPEND-ONLY CONTRACT:
  - Append(): Single record write, rejects a duplicate ID
  - NO Update() method exists
  - DeleteBefore() exists only for retention pruning
  - Reset() exists only for the admin "clear history" endpoint

IMPLEMENTATIONS:
  - generic/store/memory.go: In-memory for tests and history-less dev runs
  - store/sqlite/sqlite.go: SQLite file or :memory:
  - store/postgres/postgres.go: PostgreSQL via pgxpool

EXAMPLE:
  err := store.Append(ctx, calc)
  if errors.Is(err, generic.ErrDuplicateCalculation) {
      // Already recorded
  }

SEE ALSO:
  - types.go: Calculation record
  - api/pruner.go: Retention pruning using DeleteBefore
*/
package generic

import (
	"context"
	"time"
)

// DefaultHistoryLimit caps List when the filter has no limit.
const DefaultHistoryLimit = 50

// CalculationStore persists calculation history.
type CalculationStore interface {
	// Append persists a record. Returns ErrDuplicateCalculation if the ID exists.
	Append(ctx context.Context, calc Calculation) error

	// Get returns one record or ErrCalculationNotFound.
	Get(ctx context.Context, id CalculationID) (Calculation, error)

	// List returns records newest first.
	List(ctx context.Context, filter CalculationFilter) ([]Calculation, error)

	// DeleteBefore removes records created before cutoff and returns how many.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int, error)

	// Reset removes every record.
	Reset(ctx context.Context) error
}

// CalculationFilter narrows List. Zero values mean "no constraint", except
// Limit, which falls back to DefaultHistoryLimit.
type CalculationFilter struct {
	Kind  CalculationKind
	Limit int
}

// EffectiveLimit returns the limit List implementations should apply.
func (f CalculationFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultHistoryLimit
	}
	return f.Limit
}
