/*
slab.go - Progressive slab tables

PURPOSE:
  A slab table taxes each band of an amount at that band's marginal rate.
  Income of 15L against bands 0-4L @0%, 4-8L @5%, 8-12L @10%, 12-16L @15%
  pays 0 + 20,000 + 40,000 + 45,000.

INVARIANTS (enforced by NewSlabTable):
  - At least one slab
  - Upper bounds strictly increasing and positive
  - Only the last slab is unbounded, and it must be
  - Rates are fractions in [0, 1] and non-decreasing

These invariants are what make Apply monotonic in income, which the gross
income solver relies on.
*/
package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Slab is one marginal band. It covers (previous Upper, Upper].
type Slab struct {
	Upper     decimal.Decimal
	Unbounded bool
	Rate      decimal.Decimal
}

// SlabTable is a validated, ascending list of slabs covering [0, inf).
type SlabTable struct {
	slabs []Slab
}

// NewSlabTable validates slabs and returns a table. The slice is copied.
func NewSlabTable(slabs []Slab) (SlabTable, error) {
	if len(slabs) == 0 {
		return SlabTable{}, &TableError{Table: "slab", Index: -1, Reason: "no slabs", Err: ErrInvalidSlabTable}
	}

	prevUpper := decimal.Zero
	prevRate := decimal.Zero
	last := len(slabs) - 1
	for i, s := range slabs {
		if s.Rate.IsNegative() || s.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return SlabTable{}, &TableError{Table: "slab", Index: i, Reason: "rate outside [0, 1]", Err: ErrInvalidSlabTable}
		}
		if s.Rate.LessThan(prevRate) {
			return SlabTable{}, &TableError{Table: "slab", Index: i, Reason: "rate decreases", Err: ErrInvalidSlabTable}
		}
		if s.Unbounded != (i == last) {
			return SlabTable{}, &TableError{Table: "slab", Index: i, Reason: "only the last slab may be unbounded", Err: ErrInvalidSlabTable}
		}
		if !s.Unbounded {
			if !s.Upper.GreaterThan(prevUpper) {
				return SlabTable{}, &TableError{Table: "slab", Index: i, Reason: "upper bound not increasing", Err: ErrInvalidSlabTable}
			}
			prevUpper = s.Upper
		}
		prevRate = s.Rate
	}

	copied := make([]Slab, len(slabs))
	copy(copied, slabs)
	return SlabTable{slabs: copied}, nil
}

// MustSlabTable is NewSlabTable for package-level tables. Panics on error.
func MustSlabTable(slabs []Slab) SlabTable {
	t, err := NewSlabTable(slabs)
	if err != nil {
		panic(fmt.Sprintf("generic: %v", err))
	}
	return t
}

// Slabs returns a copy of the table's slabs.
func (t SlabTable) Slabs() []Slab {
	out := make([]Slab, len(t.slabs))
	copy(out, t.slabs)
	return out
}

// Apply returns the sum over bands of (min(income, cap) - prevCap) * rate.
// Income at or below zero yields zero.
func (t SlabTable) Apply(income decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	prev := decimal.Zero
	for _, s := range t.slabs {
		if !income.GreaterThan(prev) {
			break
		}
		top := income
		if !s.Unbounded && s.Upper.LessThan(income) {
			top = s.Upper
		}
		total = total.Add(top.Sub(prev).Mul(s.Rate))
		if s.Unbounded {
			break
		}
		prev = s.Upper
	}
	return total
}
