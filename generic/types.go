/*
Package generic provides the domain-agnostic calculation engine.

PURPOSE:
  This package contains the building blocks that every income calculation in
  the system is assembled from: progressive slab tables, threshold bracket
  tables, a fixed-iteration bisection, currency formatting and the
  calculation history contract. It has NO knowledge of a particular fiscal
  year or tax law; those live in the tax and salary packages.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money helpers: decimal constructors and rounding for currency values
  - Calculation: an immutable history record of one computation
  - CalculationKind: which operation produced a record

DESIGN PRINCIPLES:
  1. Precision: all money uses decimal.Decimal, never float64
  2. Purity: engine functions have no side effects and no shared state
  3. Immutability: calculation records are appended, never edited

USAGE:
  income := decimal.RequireFromString("1500000")
  table, err := generic.NewSlabTable([]generic.Slab{...})
  tax := table.Apply(income)

SEE ALSO:
  - slab.go: Progressive slab tables
  - bracket.go: Highest-threshold-first bracket tables
  - bisect.go: Fixed-iteration binary search
  - store.go: Calculation history persistence interface
*/
package generic

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY HELPERS
// =============================================================================

// CurrencyPlaces is the number of decimal places money is rounded to when a
// result is reported.
const CurrencyPlaces int32 = 2

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// NewMoney builds a decimal from a whole rupee amount.
func NewMoney(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

// Percent converts a percentage (40 for 40%) to a fraction (0.4).
func Percent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// RoundCurrency rounds half away from zero to CurrencyPlaces.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// ClampZero returns d, or zero when d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// =============================================================================
// CALCULATION RECORD - Immutable history entry
// =============================================================================

type CalculationID string

type CalculationKind string

const (
	KindTax      CalculationKind = "tax"       // Input: taxable income, Result: total tax
	KindTakeHome CalculationKind = "take_home" // Input: annual gross, Result: monthly take-home
	KindEstimate CalculationKind = "estimate"  // Input: target monthly, Result: annual gross
)

// Valid reports whether k is one of the known kinds.
func (k CalculationKind) Valid() bool {
	switch k {
	case KindTax, KindTakeHome, KindEstimate:
		return true
	}
	return false
}

// Calculation records one computation and its headline result.
// BasicDAPercent is zero for KindTax.
type Calculation struct {
	ID             CalculationID
	Kind           CalculationKind
	Input          decimal.Decimal
	BasicDAPercent decimal.Decimal
	Result         decimal.Decimal
	RequestID      string
	CreatedAt      time.Time
}
