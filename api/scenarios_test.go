/*
scenarios_test.go - Unit tests for preset salary profiles

PURPOSE:
	Checks that every preset lands in the tax region its description claims,
	so the list stays useful as a demo of the rebate, slabs and surcharge.
*/
package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/salary"
	"github.com/warp/takehome-engine/tax"
)

func TestListScenarios(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, newTestRouter(h), http.MethodGet, "/api/scenarios", "")

	require.Equal(t, http.StatusOK, rec.Code)
	dtos := decode[[]ScenarioDTO](t, rec)
	require.Len(t, dtos, len(scenarios))

	seen := map[string]bool{}
	for _, s := range dtos {
		assert.False(t, seen[s.ID], "duplicate scenario %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Name)
		assert.Positive(t, s.AnnualGross)
	}
}

func TestScenarios_LandInTheirTaxRegion(t *testing.T) {
	for _, s := range scenarios {
		t.Run(s.ID, func(t *testing.T) {
			b := salary.CalculateTakeHome(s.gross, s.pct)
			a := tax.Assess(b.TaxableIncome)

			switch s.Category {
			case "rebate":
				assert.True(t, a.Rebated)
				assert.True(t, b.Tax.IsZero())
			case "slabs":
				assert.False(t, a.Rebated)
				assert.True(t, a.SurchargeRate.IsZero())
			case "surcharge":
				assert.True(t, a.SurchargeRate.IsPositive())
			default:
				t.Fatalf("unknown category %q", s.Category)
			}
		})
	}
}

func TestRunScenario(t *testing.T) {
	// GIVEN: The mid-career preset
	h, mem := newTestHandler(t)

	// WHEN: Running it
	rec := do(t, newTestRouter(h), http.MethodPost, "/api/scenarios/run", `{"scenario_id": "mid-career"}`)

	// THEN: Same breakdown as a direct take-home request, recorded as one
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decode[ScenarioResultDTO](t, rec)
	assert.Equal(t, "mid-career", result.Scenario.ID)
	assert.Equal(t, 140633.33, result.Breakdown.TakeHomeMonthly)

	calc, err := mem.Get(context.Background(), generic.CalculationID(result.Breakdown.CalculationID))
	require.NoError(t, err)
	assert.Equal(t, generic.KindTakeHome, calc.Kind)
}

func TestRunScenario_Unknown(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, newTestRouter(h), http.MethodPost, "/api/scenarios/run", `{"scenario_id": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
