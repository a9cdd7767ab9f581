/*
Package salary projects take-home pay from gross income and inverts that
projection to estimate the gross needed for a target take-home.

PURPOSE:
  The projector turns an annual gross and the Basic+DA share of it into a
  monthly take-home figure: standard deduction, income tax, employee EPF.
  The solver searches gross incomes until the projection meets a target.

FORMULAS:
  taxable     = max(0, gross - 75,000)
  tax         = tax.ComputeTax(taxable)
  epf annual  = gross * basicDA% * 12%
  take-home   = (gross - tax - epf annual) / 12

Both are pure functions of their inputs. Negative gross is only clamped for
the deduction; it is not rejected here. Boundary validation lives in
validate.go and is applied by the API and CLI.

SEE ALSO:
  - tax/calculator.go: ComputeTax
  - solver.go: EstimateGrossIncome
*/
package salary

import (
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/tax"
)

var (
	// StandardDeduction is subtracted from gross before tax.
	StandardDeduction = generic.NewMoney(75000)

	// EPFRate is the employee provident fund contribution on Basic+DA.
	EPFRate = decimal.RequireFromString("0.12")

	monthsPerYear = decimal.NewFromInt(12)
)

// Breakdown is every derived figure for one gross income.
type Breakdown struct {
	AnnualGross       decimal.Decimal
	BasicDAPercent    decimal.Decimal
	StandardDeduction decimal.Decimal
	TaxableIncome     decimal.Decimal
	Tax               decimal.Decimal
	PostTaxAnnual     decimal.Decimal
	EPFMonthly        decimal.Decimal
	TakeHomeMonthly   decimal.Decimal
}

// CalculateTakeHome returns the full breakdown for annual gross income and
// the Basic+DA percentage (0-100) of it.
func CalculateTakeHome(annualGross, basicDAPercent decimal.Decimal) Breakdown {
	taxable := generic.ClampZero(annualGross.Sub(StandardDeduction))
	totalTax := tax.ComputeTax(taxable)
	epfAnnual := epfAnnual(annualGross, basicDAPercent)

	return Breakdown{
		AnnualGross:       annualGross,
		BasicDAPercent:    basicDAPercent,
		StandardDeduction: StandardDeduction,
		TaxableIncome:     taxable,
		Tax:               totalTax,
		PostTaxAnnual:     annualGross.Sub(totalTax),
		EPFMonthly:        epfAnnual.Div(monthsPerYear),
		TakeHomeMonthly:   annualGross.Sub(totalTax).Sub(epfAnnual).Div(monthsPerYear),
	}
}

// TakeHomeMonthly is CalculateTakeHome reduced to the monthly take-home.
func TakeHomeMonthly(annualGross, basicDAPercent decimal.Decimal) decimal.Decimal {
	return CalculateTakeHome(annualGross, basicDAPercent).TakeHomeMonthly
}

// Multiplying before dividing by 12 keeps whole-rupee inputs exact.
func epfAnnual(annualGross, basicDAPercent decimal.Decimal) decimal.Decimal {
	return annualGross.Mul(generic.Percent(basicDAPercent)).Mul(EPFRate)
}
