package salary

import (
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/tax"
)

// Search space for EstimateGrossIncome: 1L to 10Cr, always 100 halvings.
var (
	SearchLow  = generic.NewMoney(100000)
	SearchHigh = generic.NewMoney(100000000)
)

const SearchIterations = 100

// EstimateGrossIncome returns the annual gross whose monthly take-home meets
// targetMonthly, rounded to 2 decimal places.
//
// Targets outside what the search space can produce come back as a bound
// (1,00,000 or 10,00,00,000) rather than an error. Take-home is not strictly
// monotonic around the rebate limit and the surcharge thresholds, so targets
// that fall in one of those dips resolve to a gross below the cliff.
func EstimateGrossIncome(targetMonthly, basicDAPercent decimal.Decimal) decimal.Decimal {
	low := generic.Bisect(SearchLow, SearchHigh, SearchIterations, func(mid decimal.Decimal) bool {
		return TakeHomeMonthly(mid, basicDAPercent).LessThan(targetMonthly)
	})
	return generic.RoundCurrency(low)
}

// GrossEstimate is the reverse calculator's result.
type GrossEstimate struct {
	TargetMonthly  decimal.Decimal
	BasicDAPercent decimal.Decimal
	AnnualGross    decimal.Decimal
	MonthlyGross   decimal.Decimal
	AnnualTax      decimal.Decimal
	MonthlyTax     decimal.Decimal
	AtSearchBound  bool
}

// Estimate runs EstimateGrossIncome and reports the tax on the result.
func Estimate(targetMonthly, basicDAPercent decimal.Decimal) GrossEstimate {
	gross := EstimateGrossIncome(targetMonthly, basicDAPercent)
	annualTax := tax.ComputeTax(generic.ClampZero(gross.Sub(StandardDeduction)))

	return GrossEstimate{
		TargetMonthly:  targetMonthly,
		BasicDAPercent: basicDAPercent,
		AnnualGross:    gross,
		MonthlyGross:   gross.Div(monthsPerYear),
		AnnualTax:      annualTax,
		MonthlyTax:     annualTax.Div(monthsPerYear),
		AtSearchBound:  gross.Equal(SearchLow) || gross.Equal(SearchHigh),
	}
}
