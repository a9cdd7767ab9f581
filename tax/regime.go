/*
Package tax implements Indian income tax for FY 2025-26 under the new regime.

PURPOSE:
  Maps taxable income (after the standard deduction) to total tax payable.
  Built on the generic slab and bracket tables; this package only supplies
  the year's numbers and the order the rules are applied in.

RULE ORDER (Assess):
  1. Slab tax over the progressive table
  2. Section 87A rebate: taxable income <= 12,00,000 pays nothing at all.
     Checked after the slab walk and overrides it, surcharge and cess
     included. Tax jumps from 0 to ~62,400 just above the limit.
  3. Surcharge: highest exceeded threshold wins, tax *= (1 + rate)
  4. Health and education cess: tax *= 1.04

There is no marginal relief and no old regime. One fiscal year is hardcoded.

SEE ALSO:
  - generic/slab.go: Slab walk
  - generic/bracket.go: Surcharge lookup
  - salary/projector.go: Uses this for take-home
*/
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
)

// =============================================================================
// FY 2025-26 NEW REGIME
// =============================================================================

const (
	FiscalYear = "2025-26"
	RegimeName = "new"
)

var (
	// RebateLimit is the Section 87A ceiling on taxable income.
	RebateLimit = generic.NewMoney(1200000)

	// CessRate is the flat health and education cess on tax plus surcharge.
	CessRate = decimal.RequireFromString("0.04")

	one = decimal.NewFromInt(1)
)

// Slabs returns the FY 2025-26 new regime slab table.
//
//	0 - 4L      0%
//	4L - 8L     5%
//	8L - 12L   10%
//	12L - 16L  15%
//	16L - 20L  20%
//	20L - 24L  25%
//	above 24L  30%
func Slabs() generic.SlabTable {
	return slabs
}

// Surcharge returns the surcharge brackets, highest threshold first.
func Surcharge() generic.BracketTable {
	return surcharge
}

var slabs = generic.MustSlabTable([]generic.Slab{
	{Upper: generic.NewMoney(400000), Rate: decimal.Zero},
	{Upper: generic.NewMoney(800000), Rate: decimal.RequireFromString("0.05")},
	{Upper: generic.NewMoney(1200000), Rate: decimal.RequireFromString("0.10")},
	{Upper: generic.NewMoney(1600000), Rate: decimal.RequireFromString("0.15")},
	{Upper: generic.NewMoney(2000000), Rate: decimal.RequireFromString("0.20")},
	{Upper: generic.NewMoney(2400000), Rate: decimal.RequireFromString("0.25")},
	{Unbounded: true, Rate: decimal.RequireFromString("0.30")},
})

// The >5Cr bracket is 25%, the same as >2Cr, under the new regime.
var surcharge = generic.MustBracketTable([]generic.Bracket{
	{Threshold: generic.NewMoney(50000000), Rate: decimal.RequireFromString("0.25")},
	{Threshold: generic.NewMoney(20000000), Rate: decimal.RequireFromString("0.25")},
	{Threshold: generic.NewMoney(10000000), Rate: decimal.RequireFromString("0.15")},
	{Threshold: generic.NewMoney(5000000), Rate: decimal.RequireFromString("0.10")},
})
