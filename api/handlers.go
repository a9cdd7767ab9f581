/*
handlers.go - HTTP API handlers for the take-home calculators

PURPOSE:
  Exposes the tax, take-home and gross-estimate calculators via REST API.
  Handles HTTP request/response, JSON serialization, and delegates to the
  tax and salary packages.

ENDPOINTS:
  Calculators:
    POST   /api/tax                Tax on taxable income
    POST   /api/take-home          Monthly take-home from annual gross
    GET    /api/take-home/pdf      Same breakdown as a PDF
    POST   /api/estimate           Gross needed for a monthly take-home
    GET    /api/regime             Slabs, surcharge, cess and constants

  History:
    GET    /api/history            Recent calculations (?kind=&limit=)
    GET    /api/history/{id}       One calculation
    DELETE /api/history            Clear history

  Scenarios:
    GET    /api/scenarios          List preset salary profiles
    POST   /api/scenarios/run      Evaluate a preset profile

ARCHITECTURE:
  Handler struct holds all dependencies:
  - History: optional calculation store (nil disables history)
  - Now/NewID: clock and ID source, replaceable in tests

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call tax / salary
  4. Append to history (failures are logged, never returned)
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Calculation not found
  - 409: Duplicate calculation ID
  - 503: History requested while disabled
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Preset salary profiles
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/report"
	"github.com/warp/takehome-engine/salary"
	"github.com/warp/takehome-engine/tax"
)

var errHistoryDisabled = errors.New("history is disabled")

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	History generic.CalculationStore

	Now   func() time.Time
	NewID func() string
}

// NewHandler creates a new handler. history may be nil.
func NewHandler(history generic.CalculationStore) *Handler {
	return &Handler{
		History: history,
		Now:     time.Now,
		NewID:   uuid.NewString,
	}
}

// =============================================================================
// CALCULATOR HANDLERS
// =============================================================================

// ComputeTax returns the tax assessment for a taxable income.
func (h *Handler) ComputeTax(w http.ResponseWriter, r *http.Request) {
	var req TaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	taxable, err := requireAmount("taxable_income", req.TaxableIncome)
	if err != nil {
		writeDomainError(w, "Invalid tax request", err)
		return
	}

	a := tax.Assess(taxable)
	dto := toAssessmentDTO(a)
	dto.CalculationID = h.record(r, generic.KindTax, taxable, decimal.Zero, a.Total)

	writeJSON(w, http.StatusOK, dto)
}

// CalculateTakeHome returns the salary breakdown for an annual gross.
func (h *Handler) CalculateTakeHome(w http.ResponseWriter, r *http.Request) {
	var req TakeHomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	gross, pct, err := takeHomeInputs(req.AnnualGross, req.BasicDAPct)
	if err != nil {
		writeDomainError(w, "Invalid take-home request", err)
		return
	}

	b := salary.CalculateTakeHome(gross, pct)
	dto := toSalaryBreakdownDTO(b)
	dto.CalculationID = h.record(r, generic.KindTakeHome, gross, pct, b.TakeHomeMonthly)

	writeJSON(w, http.StatusOK, dto)
}

// TakeHomePDF renders the salary breakdown as a PDF.
// Query parameters: annual_gross, basic_da_pct.
func (h *Handler) TakeHomePDF(w http.ResponseWriter, r *http.Request) {
	grossParam, err := queryDecimal(r, "annual_gross")
	if err != nil {
		writeDomainError(w, "Invalid take-home request", err)
		return
	}
	pctParam, err := queryDecimal(r, "basic_da_pct")
	if err != nil {
		writeDomainError(w, "Invalid take-home request", err)
		return
	}

	gross, pct, err := takeHomeInputs(grossParam, pctParam)
	if err != nil {
		writeDomainError(w, "Invalid take-home request", err)
		return
	}

	pdf, err := report.SalaryBreakdownPDF(salary.CalculateTakeHome(gross, pct))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render PDF", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="salary-breakdown.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// EstimateGross returns the annual gross needed for a monthly take-home.
// Targets are not range-checked: out-of-range targets come back as a
// search bound with at_search_bound set.
func (h *Handler) EstimateGross(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	target, err := requireTarget("target_monthly", req.TargetMonthly)
	if err != nil {
		writeDomainError(w, "Invalid estimate request", err)
		return
	}
	pct, err := requirePercent("basic_da_pct", req.BasicDAPct)
	if err != nil {
		writeDomainError(w, "Invalid estimate request", err)
		return
	}

	e := salary.Estimate(target, pct)
	dto := toGrossEstimateDTO(e)
	dto.CalculationID = h.record(r, generic.KindEstimate, target, pct, e.AnnualGross)

	writeJSON(w, http.StatusOK, dto)
}

// GetRegime returns the rules the calculators apply.
func (h *Handler) GetRegime(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toRegimeDTO(tax.NewRegime25()))
}

// =============================================================================
// HISTORY HANDLERS
// =============================================================================

// ListHistory returns recent calculations, newest first.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	if h.History == nil {
		writeError(w, http.StatusServiceUnavailable, "History unavailable", errHistoryDisabled)
		return
	}

	filter := generic.CalculationFilter{
		Kind: generic.CalculationKind(r.URL.Query().Get("kind")),
	}
	if filter.Kind != "" && !filter.Kind.Valid() {
		writeDomainError(w, "Invalid history filter", &generic.ValidationError{
			Field:   "kind",
			Value:   string(filter.Kind),
			Message: "must be one of tax, take_home, estimate",
		})
		return
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeDomainError(w, "Invalid history filter", &generic.ValidationError{
				Field:   "limit",
				Value:   raw,
				Message: "must be a positive integer",
			})
			return
		}
		filter.Limit = limit
	}

	calcs, err := h.History.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list history", err)
		return
	}

	dtos := make([]CalculationDTO, len(calcs))
	for i, c := range calcs {
		dtos[i] = toCalculationDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetHistory returns one calculation.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if h.History == nil {
		writeError(w, http.StatusServiceUnavailable, "History unavailable", errHistoryDisabled)
		return
	}

	id := generic.CalculationID(chi.URLParam(r, "id"))
	calc, err := h.History.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get calculation", err)
		return
	}
	writeJSON(w, http.StatusOK, toCalculationDTO(calc))
}

// ResetHistory clears all history (dev only).
func (h *Handler) ResetHistory(w http.ResponseWriter, r *http.Request) {
	if h.History == nil {
		writeError(w, http.StatusServiceUnavailable, "History unavailable", errHistoryDisabled)
		return
	}

	if err := h.History.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset history", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Health reports liveness and, when the store supports it, reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dto := HealthDTO{Status: "ok", History: "disabled"}
	if h.History != nil {
		dto.History = "ok"
		if p, ok := h.History.(pinger); ok {
			if err := p.Ping(r.Context()); err != nil {
				dto.Status, dto.History = "degraded", err.Error()
				writeJSON(w, http.StatusServiceUnavailable, dto)
				return
			}
		}
	}
	writeJSON(w, http.StatusOK, dto)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// =============================================================================
// HELPERS
// =============================================================================

// record appends a calculation to history and returns its ID, or "" when
// history is disabled or the append failed.
func (h *Handler) record(r *http.Request, kind generic.CalculationKind, input, pct, result decimal.Decimal) string {
	if h.History == nil {
		return ""
	}

	calc := generic.Calculation{
		ID:             generic.CalculationID(h.NewID()),
		Kind:           kind,
		Input:          input,
		BasicDAPercent: pct,
		Result:         result,
		RequestID:      middleware.GetReqID(r.Context()),
		CreatedAt:      h.Now(),
	}
	if err := h.History.Append(r.Context(), calc); err != nil {
		log.Printf("[History] Failed to record %s calculation: %v", kind, err)
		return ""
	}
	return string(calc.ID)
}

func takeHomeInputs(gross, pct decimal.NullDecimal) (decimal.Decimal, decimal.Decimal, error) {
	g, err := requireAmount("annual_gross", gross)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	p, err := requirePercent("basic_da_pct", pct)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return g, p, nil
}

func required(field string, v decimal.NullDecimal) (decimal.Decimal, error) {
	if !v.Valid {
		return decimal.Zero, &generic.ValidationError{Field: field, Message: "is required"}
	}
	return v.Decimal, nil
}

func requireAmount(field string, v decimal.NullDecimal) (decimal.Decimal, error) {
	d, err := required(field, v)
	if err != nil {
		return d, err
	}
	return d, salary.ValidateAmount(field, d)
}

func requireTarget(field string, v decimal.NullDecimal) (decimal.Decimal, error) {
	d, err := required(field, v)
	if err != nil {
		return d, err
	}
	return d, salary.ValidateTarget(field, d)
}

func requirePercent(field string, v decimal.NullDecimal) (decimal.Decimal, error) {
	d, err := required(field, v)
	if err != nil {
		return d, err
	}
	return d, salary.ValidatePercent(field, d)
}

// queryDecimal reads a numeric query parameter; absent is not an error.
func queryDecimal(r *http.Request, field string) (decimal.NullDecimal, error) {
	raw := r.URL.Query().Get(field)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, &generic.ValidationError{Field: field, Value: raw, Message: "must be a number"}
	}
	return decimal.NewNullDecimal(d), nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps the generic error taxonomy to an HTTP status.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, generic.ErrDuplicateCalculation):
		writeError(w, http.StatusConflict, message, err)
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case generic.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
