package tax

import (
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
)

// Regime bundles one year's tax rules. There is exactly one: NewRegime25.
type Regime struct {
	FiscalYear  string
	Name        string
	Slabs       generic.SlabTable
	Surcharge   generic.BracketTable
	RebateLimit decimal.Decimal
	CessRate    decimal.Decimal
}

// NewRegime25 returns the FY 2025-26 new regime.
func NewRegime25() Regime {
	return Regime{
		FiscalYear:  FiscalYear,
		Name:        RegimeName,
		Slabs:       slabs,
		Surcharge:   surcharge,
		RebateLimit: RebateLimit,
		CessRate:    CessRate,
	}
}

var current = NewRegime25()

// Assessment is the tax on one taxable income with its parts.
// When Rebated is true every amount is zero except SlabTax.
type Assessment struct {
	TaxableIncome decimal.Decimal
	SlabTax       decimal.Decimal
	Rebated       bool
	SurchargeRate decimal.Decimal
	Surcharge     decimal.Decimal
	Cess          decimal.Decimal
	Total         decimal.Decimal
}

// ComputeTax returns total tax (slabs, rebate, surcharge, cess) on taxable
// income. Callers clamp negative income to zero before calling.
func ComputeTax(taxableIncome decimal.Decimal) decimal.Decimal {
	return current.ComputeTax(taxableIncome)
}

// Assess computes tax the same way as ComputeTax and keeps the parts.
func Assess(taxableIncome decimal.Decimal) Assessment {
	return current.Assess(taxableIncome)
}

// ComputeTax returns the total tax under r.
func (r Regime) ComputeTax(taxableIncome decimal.Decimal) decimal.Decimal {
	return r.Assess(taxableIncome).Total
}

// Assess applies slabs, rebate, surcharge and cess in that order.
func (r Regime) Assess(taxableIncome decimal.Decimal) Assessment {
	a := Assessment{
		TaxableIncome: taxableIncome,
		SlabTax:       r.Slabs.Apply(taxableIncome),
		SurchargeRate: decimal.Zero,
		Surcharge:     decimal.Zero,
		Cess:          decimal.Zero,
		Total:         decimal.Zero,
	}

	if !taxableIncome.GreaterThan(r.RebateLimit) {
		a.Rebated = true
		return a
	}

	a.SurchargeRate = r.Surcharge.RateFor(taxableIncome)
	withSurcharge := a.SlabTax.Mul(one.Add(a.SurchargeRate))
	a.Surcharge = withSurcharge.Sub(a.SlabTax)

	a.Total = withSurcharge.Mul(one.Add(r.CessRate))
	a.Cess = a.Total.Sub(withSurcharge)
	return a
}
