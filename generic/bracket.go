package generic

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Bracket applies Rate to amounts strictly above Threshold.
type Bracket struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// BracketTable holds brackets ordered highest threshold first, so the first
// exceeded threshold wins.
type BracketTable struct {
	brackets []Bracket
}

// NewBracketTable sorts brackets by descending threshold. An empty table is
// valid and always yields a zero rate.
func NewBracketTable(brackets []Bracket) (BracketTable, error) {
	sorted := make([]Bracket, len(brackets))
	copy(sorted, brackets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold.GreaterThan(sorted[j].Threshold)
	})

	for i, b := range sorted {
		if b.Rate.IsNegative() {
			return BracketTable{}, &TableError{Table: "bracket", Index: i, Reason: "negative rate", Err: ErrInvalidBracketTable}
		}
		if b.Threshold.IsNegative() {
			return BracketTable{}, &TableError{Table: "bracket", Index: i, Reason: "negative threshold", Err: ErrInvalidBracketTable}
		}
		if i > 0 && b.Threshold.Equal(sorted[i-1].Threshold) {
			return BracketTable{}, &TableError{Table: "bracket", Index: i, Reason: "duplicate threshold", Err: ErrInvalidBracketTable}
		}
	}
	return BracketTable{brackets: sorted}, nil
}

// MustBracketTable is NewBracketTable for package-level tables.
func MustBracketTable(brackets []Bracket) BracketTable {
	t, err := NewBracketTable(brackets)
	if err != nil {
		panic(fmt.Sprintf("generic: %v", err))
	}
	return t
}

// Brackets returns a copy, highest threshold first.
func (t BracketTable) Brackets() []Bracket {
	out := make([]Bracket, len(t.brackets))
	copy(out, t.brackets)
	return out
}

// RateFor returns the rate of the highest bracket whose threshold amount
// exceeds, or zero when none does.
func (t BracketTable) RateFor(amount decimal.Decimal) decimal.Decimal {
	for _, b := range t.brackets {
		if amount.GreaterThan(b.Threshold) {
			return b.Rate
		}
	}
	return decimal.Zero
}
