package salary_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/salary"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s", want, got.String())
}

// =============================================================================
// PROJECTOR
// =============================================================================

func TestCalculateTakeHome_TwentyLakh(t *testing.T) {
	// GIVEN: 20L gross with half of it Basic+DA
	b := salary.CalculateTakeHome(d("2000000"), d("50"))

	// THEN: 75k deduction, slab tax 185,000 * 1.04, EPF 12% of 10L / 12
	assertDecimal(t, "2000000", b.AnnualGross)
	assertDecimal(t, "75000", b.StandardDeduction)
	assertDecimal(t, "1925000", b.TaxableIncome)
	assertDecimal(t, "192400", b.Tax)
	assertDecimal(t, "1807600", b.PostTaxAnnual)
	assertDecimal(t, "10000", b.EPFMonthly)
	assertDecimal(t, "140633.33", b.TakeHomeMonthly.Round(2))
}

func TestCalculateTakeHome_BelowRebateLimit(t *testing.T) {
	// 12.75L gross is exactly 12L taxable: no tax
	b := salary.CalculateTakeHome(d("1275000"), d("40"))

	assertDecimal(t, "1200000", b.TaxableIncome)
	assertDecimal(t, "0", b.Tax)
	assertDecimal(t, "5100", b.EPFMonthly)
	assertDecimal(t, "101150", b.TakeHomeMonthly)
}

func TestCalculateTakeHome_DeductionClampsAtZero(t *testing.T) {
	b := salary.CalculateTakeHome(d("50000"), d("0"))
	assertDecimal(t, "0", b.TaxableIncome)
	assertDecimal(t, "0", b.Tax)

	neg := salary.CalculateTakeHome(d("-1200"), d("0"))
	assertDecimal(t, "0", neg.TaxableIncome)
	assertDecimal(t, "-100", neg.TakeHomeMonthly)
}

func TestTakeHomeMonthly_MatchesBreakdown(t *testing.T) {
	for _, gross := range []string{"300000", "1500000", "7500000"} {
		b := salary.CalculateTakeHome(d(gross), d("45"))
		assert.True(t, b.TakeHomeMonthly.Equal(salary.TakeHomeMonthly(d(gross), d("45"))))
	}
}

// =============================================================================
// SOLVER
// =============================================================================

func TestEstimateGrossIncome_RoundTrip(t *testing.T) {
	// Grosses are chosen away from the rebate and surcharge cliffs, where
	// take-home dips and the inverse is not unique.
	grosses := []string{"200000", "500000", "1000000", "2000000", "4000000", "7500000", "15000000", "30000000", "50000000"}
	percents := []string{"30", "50", "70"}

	for _, g := range grosses {
		for _, p := range percents {
			t.Run(fmt.Sprintf("%s@%s", g, p), func(t *testing.T) {
				target := salary.CalculateTakeHome(d(g), d(p)).TakeHomeMonthly
				got := salary.EstimateGrossIncome(target, d(p))

				tolerance := d(g).Mul(d("0.0001"))
				assert.Truef(t, got.Sub(d(g)).Abs().LessThanOrEqual(tolerance),
					"estimate %s too far from %s", got, g)
			})
		}
	}
}

func TestEstimateGrossIncome_FiftyThousandMonthly(t *testing.T) {
	// Below the rebate: gross * (1 - 0.5 * 0.12) = 6,00,000
	got := salary.EstimateGrossIncome(d("50000"), d("50"))
	assertDecimal(t, "638297.87", got)
}

func TestEstimateGrossIncome_Deterministic(t *testing.T) {
	first := salary.EstimateGrossIncome(d("50000"), d("50"))
	for i := 0; i < 5; i++ {
		assert.True(t, first.Equal(salary.EstimateGrossIncome(d("50000"), d("50"))))
	}
}

func TestEstimateGrossIncome_OutOfRangeTargetsReturnBounds(t *testing.T) {
	assertDecimal(t, "100000", salary.EstimateGrossIncome(d("0"), d("40")))
	assertDecimal(t, "100000", salary.EstimateGrossIncome(d("-5000"), d("40")))
	assertDecimal(t, "100000000", salary.EstimateGrossIncome(d("100000000"), d("40")))
}

func TestEstimate_ReportsTaxOnEstimatedGross(t *testing.T) {
	target := salary.CalculateTakeHome(d("2000000"), d("50")).TakeHomeMonthly
	e := salary.Estimate(target, d("50"))

	assertDecimal(t, "2000000", e.AnnualGross)
	assertDecimal(t, "192400", e.AnnualTax)
	assertDecimal(t, "16033.33", e.MonthlyTax.Round(2))
	assertDecimal(t, "166666.67", e.MonthlyGross.Round(2))
	assert.False(t, e.AtSearchBound)
}

func TestEstimate_FlagsSearchBound(t *testing.T) {
	assert.True(t, salary.Estimate(d("1"), d("40")).AtSearchBound)
	assert.True(t, salary.Estimate(d("99999999"), d("40")).AtSearchBound)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidatePercent(t *testing.T) {
	require.NoError(t, salary.ValidatePercent("basic_da_pct", d("0")))
	require.NoError(t, salary.ValidatePercent("basic_da_pct", d("100")))

	err := salary.ValidatePercent("basic_da_pct", d("100.5"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, generic.ErrInvalidInput))

	var ve *generic.ValidationError
	require.ErrorAs(t, salary.ValidatePercent("basic_da_pct", d("-1")), &ve)
	assert.Equal(t, "basic_da_pct", ve.Field)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, salary.ValidateAmount("annual_gross", d("0")))
	assert.NoError(t, salary.ValidateAmount("annual_gross", d("1000000000000000")))
	assert.NoError(t, salary.ValidateAmount("annual_gross", d("2000000.123456")))
	assert.ErrorIs(t, salary.ValidateAmount("annual_gross", d("-1")), generic.ErrInvalidInput)
}

func TestValidate_RejectsOversizedNumbers(t *testing.T) {
	// GIVEN: Values whose size alone makes decimal arithmetic expensive
	tests := []struct {
		name string
		raw  string
	}{
		{"above cap", "1000000000000000.01"},
		{"huge exponent", "1e2000000"},
		{"huge negative exponent", "1e-2000000"},
		{"zero with huge exponent", "0e2000000"},
		{"too many places", "1.0000001"},
		{"negative huge", "-1e400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := d(tt.raw)

			// THEN: Every validator refuses them before comparing
			for _, err := range []error{
				salary.ValidateAmount("annual_gross", v),
				salary.ValidateTarget("target_monthly", v),
				salary.ValidatePercent("basic_da_pct", v),
			} {
				require.Error(t, err)
				assert.True(t, generic.IsClientError(err))
				assert.Less(t, len(err.Error()), 100)
			}
		})
	}
}

func TestValidateTarget_AllowsAnySign(t *testing.T) {
	assert.NoError(t, salary.ValidateTarget("target_monthly", d("-50000")))
	assert.NoError(t, salary.ValidateTarget("target_monthly", d("999999999999999")))
}
