/*
errors.go - Centralized error types for the calculation engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The pure calculators never return errors; these are raised by table
  construction, input validation at the API/CLI boundary, and stores.

ERROR CATEGORIES:
  1. Table errors - Slab or bracket tables that break their invariants
  2. Validation errors - Inputs outside the calculators' domain
  3. Store errors - Calculation history persistence failures

USAGE:
  if errors.Is(err, generic.ErrCalculationNotFound) {
      // 404
  }

SEE ALSO:
  - slab.go, bracket.go: Raise TableError
  - store.go: Store errors
  - api/handlers.go: Maps errors to HTTP status codes
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidSlabTable is returned when slabs are unordered, have
	// decreasing rates, or do not end in an unbounded slab.
	ErrInvalidSlabTable = errors.New("invalid slab table")

	// ErrInvalidBracketTable is returned for negative or duplicate brackets.
	ErrInvalidBracketTable = errors.New("invalid bracket table")

	// ErrInvalidInput is returned when a caller-supplied value is outside
	// the domain a calculator accepts.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCalculationNotFound is returned when a history record doesn't exist.
	ErrCalculationNotFound = errors.New("calculation not found")

	// ErrDuplicateCalculation is returned when a record ID already exists.
	// History is append-only, so a retry with the same ID is rejected.
	ErrDuplicateCalculation = errors.New("duplicate calculation id")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// TableError describes which entry of a slab or bracket table is invalid.
// Index is -1 when the table as a whole is at fault.
type TableError struct {
	Table  string // "slab" or "bracket"
	Index  int
	Reason string
	Err    error
}

func (e *TableError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s table: %s", e.Table, e.Reason)
	}
	return fmt.Sprintf("%s table entry %d: %s", e.Table, e.Index, e.Reason)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// ValidationError names the offending field of a request.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDuplicateCalculation)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCalculationNotFound)
}
