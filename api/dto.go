/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the tax and salary packages from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

NUMBERS:
  Request amounts are decimal.NullDecimal so a field may be sent as a JSON
  number (1500000) or a numeric string ("1500000"), and a missing field is
  distinguishable from zero. Response amounts are float64 rounded to 2 dp,
  with a *_display string in en-IN format next to the headline figure.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/salary"
	"github.com/warp/takehome-engine/tax"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// TaxRequest is the request to compute tax on taxable income.
type TaxRequest struct {
	TaxableIncome decimal.NullDecimal `json:"taxable_income"`
}

// TakeHomeRequest is the request to project take-home salary.
type TakeHomeRequest struct {
	AnnualGross decimal.NullDecimal `json:"annual_gross"`
	BasicDAPct  decimal.NullDecimal `json:"basic_da_pct"`
}

// EstimateRequest is the request to estimate gross from a target take-home.
type EstimateRequest struct {
	TargetMonthly decimal.NullDecimal `json:"target_monthly"`
	BasicDAPct    decimal.NullDecimal `json:"basic_da_pct"`
}

// RunScenarioRequest is the request to evaluate a preset profile.
type RunScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// AssessmentDTO is the tax on one taxable income with its parts.
type AssessmentDTO struct {
	CalculationID string  `json:"calculation_id,omitempty"`
	TaxableIncome float64 `json:"taxable_income"`
	SlabTax       float64 `json:"slab_tax"`
	Rebated       bool    `json:"rebated"`
	SurchargeRate float64 `json:"surcharge_rate"`
	Surcharge     float64 `json:"surcharge"`
	Cess          float64 `json:"cess"`
	TotalTax      float64 `json:"total_tax"`
	TotalDisplay  string  `json:"total_tax_display"`
}

// SalaryBreakdownDTO is the projector's breakdown for one gross income.
type SalaryBreakdownDTO struct {
	CalculationID     string  `json:"calculation_id,omitempty"`
	AnnualGross       float64 `json:"annual_gross"`
	BasicDAPct        float64 `json:"basic_da_pct"`
	StandardDeduction float64 `json:"standard_deduction"`
	TaxableIncome     float64 `json:"taxable_income"`
	Tax               float64 `json:"tax"`
	PostTaxAnnual     float64 `json:"post_tax_annual"`
	EPFMonthly        float64 `json:"epf_monthly"`
	TakeHomeMonthly   float64 `json:"take_home_monthly"`
	TakeHomeDisplay   string  `json:"take_home_monthly_display"`
}

// GrossEstimateDTO is the reverse calculator's result.
type GrossEstimateDTO struct {
	CalculationID      string  `json:"calculation_id,omitempty"`
	TargetMonthly      float64 `json:"target_monthly"`
	BasicDAPct         float64 `json:"basic_da_pct"`
	AnnualGross        float64 `json:"annual_gross"`
	AnnualGrossDisplay string  `json:"annual_gross_display"`
	MonthlyGross       float64 `json:"monthly_gross"`
	AnnualTax          float64 `json:"annual_tax"`
	MonthlyTax         float64 `json:"monthly_tax"`
	AtSearchBound      bool    `json:"at_search_bound"`
}

// SlabDTO is one slab of the tax table. UpTo is nil for the last slab.
type SlabDTO struct {
	UpTo *float64 `json:"up_to"`
	Rate float64  `json:"rate"`
}

// SurchargeDTO is one surcharge bracket.
type SurchargeDTO struct {
	Above float64 `json:"above"`
	Rate  float64 `json:"rate"`
}

// RegimeDTO describes the rules the calculators apply.
type RegimeDTO struct {
	FiscalYear        string         `json:"fiscal_year"`
	Regime            string         `json:"regime"`
	Slabs             []SlabDTO      `json:"slabs"`
	Surcharge         []SurchargeDTO `json:"surcharge"`
	RebateLimit       float64        `json:"rebate_limit"`
	CessRate          float64        `json:"cess_rate"`
	StandardDeduction float64        `json:"standard_deduction"`
	EPFRate           float64        `json:"epf_rate"`
	SearchLow         float64        `json:"search_low"`
	SearchHigh        float64        `json:"search_high"`
	SearchIterations  int            `json:"search_iterations"`
}

// CalculationDTO is one history record.
type CalculationDTO struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	Input      float64 `json:"input"`
	BasicDAPct float64 `json:"basic_da_pct"`
	Result     float64 `json:"result"`
	RequestID  string  `json:"request_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ScenarioDTO represents a preset salary profile.
type ScenarioDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	AnnualGross float64 `json:"annual_gross"`
	BasicDAPct  float64 `json:"basic_da_pct"`
}

// ScenarioResultDTO is a preset profile with its breakdown.
type ScenarioResultDTO struct {
	Scenario  ScenarioDTO        `json:"scenario"`
	Breakdown SalaryBreakdownDTO `json:"breakdown"`
}

// HealthDTO is the health check response.
type HealthDTO struct {
	Status  string `json:"status"`
	History string `json:"history"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func money(d decimal.Decimal) float64 {
	return generic.RoundCurrency(d).InexactFloat64()
}

func toAssessmentDTO(a tax.Assessment) AssessmentDTO {
	return AssessmentDTO{
		TaxableIncome: money(a.TaxableIncome),
		SlabTax:       money(a.SlabTax),
		Rebated:       a.Rebated,
		SurchargeRate: a.SurchargeRate.InexactFloat64(),
		Surcharge:     money(a.Surcharge),
		Cess:          money(a.Cess),
		TotalTax:      money(a.Total),
		TotalDisplay:  generic.FormatINR(a.Total),
	}
}

func toSalaryBreakdownDTO(b salary.Breakdown) SalaryBreakdownDTO {
	return SalaryBreakdownDTO{
		AnnualGross:       money(b.AnnualGross),
		BasicDAPct:        b.BasicDAPercent.InexactFloat64(),
		StandardDeduction: money(b.StandardDeduction),
		TaxableIncome:     money(b.TaxableIncome),
		Tax:               money(b.Tax),
		PostTaxAnnual:     money(b.PostTaxAnnual),
		EPFMonthly:        money(b.EPFMonthly),
		TakeHomeMonthly:   money(b.TakeHomeMonthly),
		TakeHomeDisplay:   generic.FormatINR(b.TakeHomeMonthly),
	}
}

func toGrossEstimateDTO(e salary.GrossEstimate) GrossEstimateDTO {
	return GrossEstimateDTO{
		TargetMonthly:      money(e.TargetMonthly),
		BasicDAPct:         e.BasicDAPercent.InexactFloat64(),
		AnnualGross:        money(e.AnnualGross),
		AnnualGrossDisplay: generic.FormatINR(e.AnnualGross),
		MonthlyGross:       money(e.MonthlyGross),
		AnnualTax:          money(e.AnnualTax),
		MonthlyTax:         money(e.MonthlyTax),
		AtSearchBound:      e.AtSearchBound,
	}
}

func toRegimeDTO(r tax.Regime) RegimeDTO {
	dto := RegimeDTO{
		FiscalYear:        r.FiscalYear,
		Regime:            r.Name,
		RebateLimit:       money(r.RebateLimit),
		CessRate:          r.CessRate.InexactFloat64(),
		StandardDeduction: money(salary.StandardDeduction),
		EPFRate:           salary.EPFRate.InexactFloat64(),
		SearchLow:         money(salary.SearchLow),
		SearchHigh:        money(salary.SearchHigh),
		SearchIterations:  salary.SearchIterations,
	}
	for _, s := range r.Slabs.Slabs() {
		slab := SlabDTO{Rate: s.Rate.InexactFloat64()}
		if !s.Unbounded {
			upTo := money(s.Upper)
			slab.UpTo = &upTo
		}
		dto.Slabs = append(dto.Slabs, slab)
	}
	for _, b := range r.Surcharge.Brackets() {
		dto.Surcharge = append(dto.Surcharge, SurchargeDTO{
			Above: money(b.Threshold),
			Rate:  b.Rate.InexactFloat64(),
		})
	}
	return dto
}

func toCalculationDTO(c generic.Calculation) CalculationDTO {
	return CalculationDTO{
		ID:         string(c.ID),
		Kind:       string(c.Kind),
		Input:      money(c.Input),
		BasicDAPct: c.BasicDAPercent.InexactFloat64(),
		Result:     money(c.Result),
		RequestID:  c.RequestID,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
