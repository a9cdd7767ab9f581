/*
scenarios.go - Preset salary profiles for demos and regression checks

PURPOSE:

	Provides named salary profiles that exercise each region of the tax
	rules: below the rebate, exactly on it, the progressive slabs, and each
	surcharge bracket. Running one projects its take-home like a normal
	take-home request and records it in history.

AVAILABLE SCENARIOS:

	fresher:          6L gross, well inside the rebate
	rebate-edge:      12.75L gross, exactly 12L taxable, zero tax
	mid-career:       20L gross, 20% slab
	senior:           40L gross, top slab, no surcharge
	surcharge-10:     75L gross, 10% surcharge
	surcharge-15:     1.5Cr gross, 15% surcharge
	executive:        6Cr gross, 25% surcharge

USAGE VIA API:

	POST /api/scenarios/run
	{"scenario_id": "mid-career"}

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description, inputs
 2. Nothing else: RunScenario looks profiles up by ID

SEE ALSO:
  - handlers.go: record, writeJSON
  - salary/projector.go: CalculateTakeHome
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/salary"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

type scenario struct {
	ScenarioDTO
	gross decimal.Decimal
	pct   decimal.Decimal
}

func newScenario(id, name, description, category string, gross, pct int64) scenario {
	return scenario{
		ScenarioDTO: ScenarioDTO{
			ID:          id,
			Name:        name,
			Description: description,
			Category:    category,
			AnnualGross: float64(gross),
			BasicDAPct:  float64(pct),
		},
		gross: decimal.NewFromInt(gross),
		pct:   decimal.NewFromInt(pct),
	}
}

var scenarios = []scenario{
	newScenario("fresher", "Fresher",
		"Entry-level salary well inside the Section 87A rebate", "rebate", 600000, 40),
	newScenario("rebate-edge", "Rebate Edge",
		"Taxable income exactly at the 12L rebate limit", "rebate", 1275000, 40),
	newScenario("mid-career", "Mid-Career",
		"Progressive slabs up to 20%, no surcharge", "slabs", 2000000, 50),
	newScenario("senior", "Senior",
		"Top 30% slab, below the first surcharge bracket", "slabs", 4000000, 50),
	newScenario("surcharge-10", "10% Surcharge",
		"Taxable income above 50L", "surcharge", 7500000, 50),
	newScenario("surcharge-15", "15% Surcharge",
		"Taxable income above 1Cr", "surcharge", 15000000, 50),
	newScenario("executive", "Executive",
		"Taxable income above 5Cr, 25% surcharge", "surcharge", 60000000, 30),
}

func findScenario(id string) (scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return scenario{}, false
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.ScenarioDTO
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RunScenario projects the take-home for a preset profile.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	var req RunScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	s, ok := findScenario(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	b := salary.CalculateTakeHome(s.gross, s.pct)
	breakdown := toSalaryBreakdownDTO(b)
	breakdown.CalculationID = h.record(r, generic.KindTakeHome, s.gross, s.pct, b.TakeHomeMonthly)

	writeJSON(w, http.StatusOK, ScenarioResultDTO{
		Scenario:  s.ScenarioDTO,
		Breakdown: breakdown,
	})
}
