/*
handlers.go - HTTP request handlers

PURPOSE:
  Implements the HTTP handlers for the JSON API and the PDF downloads.
  Each handler parses the request, calls Evaluate or the holiday calendar,
  and writes the response.

HANDLER PATTERN:
  func (h *Handler) HandlerName(w http.ResponseWriter, r *http.Request) {
      // 1. Parse request (URL params, query, body)
      // 2. Evaluate / query the calendar
      // 3. Convert to DTO
      // 4. Write JSON response (or the PDF attachment)
  }

ERROR HANDLING:
  - 400 Bad Request: invalid JSON, missing or invalid fields, unknown
    calculation type, sector or format, a year with no holiday table
  - 500 Internal Server Error: anything else (logged)

  Ineligibility is not an error: it is a 200 with eligible=false.

ENDPOINTS:
  GET  /api/health
  POST /api/calculate
  GET  /api/holidays?year=&state=
  GET  /api/holidays/months?year=&state=
  GET  /api/working-days?year=&state=
  GET  /download/{calcType}/{format}?<calculation fields>

SEE ALSO:
  - calculate.go: Evaluate and the request defaults
  - dto.go: Request/Response types
  - server.go: Route definitions
*/
package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/warp/statutory-engine/holiday"
	"github.com/warp/statutory-engine/report"
	"github.com/warp/statutory-engine/statutory"
	"github.com/warp/statutory-engine/tables"
)

const defaultCalendarState = "central"

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	Calc     *statutory.Calculator
	Calendar *holiday.Calendar
	Reports  *report.Assembler
	Logger   *zap.Logger
}

// NewHandler creates a new handler over one set of tables.
func NewHandler(t *tables.Tables, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Calc:     statutory.New(t),
		Calendar: holiday.New(t),
		Reports:  report.NewAssembler(),
		Logger:   logger,
	}
}

// =============================================================================
// HEALTH
// =============================================================================

// Health reports liveness and the holiday years served.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"holiday_years": h.Calendar.Years(),
		"calculations":  statutory.CalcTypes,
	})
}

// =============================================================================
// CALCULATIONS
// =============================================================================

// Calculate runs one calculation from a JSON body.
// POST /api/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	out, err := Evaluate(h.Calc, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CalculateResponse{Success: true, Result: out.DTO()})
}

// Download renders one calculation as a PDF attachment. Inputs come from
// the query string using the same names as the JSON body.
// GET /download/{calcType}/{format}
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	if format := chi.URLParam(r, "format"); format != "pdf" {
		h.fail(w, r, &statutory.VariantError{Kind: "format", Value: format})
		return
	}

	req, err := RequestFromValues(chi.URLParam(r, "calcType"), r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := Evaluate(h.Calc, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// Render to a buffer so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := out.RenderPDF(h.Reports, &buf); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(out.Type)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// =============================================================================
// HOLIDAY CALENDAR
// =============================================================================

// ListHolidays returns the holidays for a year and state, sorted by date.
// GET /api/holidays?year=&state=
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, state, err := h.calendarQuery(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	entries, err := h.Calendar.ForYear(year, state)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"year":     year,
		"state":    state,
		"holidays": ToHolidayDTOs(entries),
	})
}

// HolidaysByMonth returns the holidays grouped by month.
// GET /api/holidays/months?year=&state=
func (h *Handler) HolidaysByMonth(w http.ResponseWriter, r *http.Request) {
	year, state, err := h.calendarQuery(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	months, err := h.Calendar.ByMonth(year, state)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"year":   year,
		"state":  state,
		"months": ToMonthDTOs(months),
	})
}

// WorkingDays returns the approximate working-day summary.
// GET /api/working-days?year=&state=
func (h *Handler) WorkingDays(w http.ResponseWriter, r *http.Request) {
	year, state, err := h.calendarQuery(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	summary, err := h.Calendar.WorkingDays(year, state)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ToWorkingDaysDTO(summary))
}

// calendarQuery reads ?year= (default: latest year with a table) and
// ?state= (default: central list only).
func (h *Handler) calendarQuery(q url.Values) (int, string, error) {
	state := orDefault(q.Get("state"), defaultCalendarState)

	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return 0, "", &statutory.InputError{Field: "year", Value: v, Reason: "must be a whole number"}
		}
		return year, state, nil
	}

	years := h.Calendar.Years()
	if len(years) == 0 {
		return 0, "", holiday.ErrNoCalendar
	}
	return years[len(years)-1], state, nil
}

// =============================================================================
// QUERY PARSING
// =============================================================================

// RequestFromValues builds a CalculateRequest from string parameters such as
// a download query string or CLI flags.
// Absent parameters stay nil so Evaluate applies the same defaults and
// required-field checks as the JSON endpoint.
func RequestFromValues(calcType string, q url.Values) (CalculateRequest, error) {
	req := CalculateRequest{
		Type:              calcType,
		Sector:            q.Get("sector"),
		State:             q.Get("state"),
		EstablishmentType: q.Get("establishment_type"),
		IndustryType:      q.Get("industry_type"),
	}

	decimals := []struct {
		name string
		dst  **decimal.Decimal
	}{
		{"salary", &req.Salary},
		{"years", &req.Years},
		{"basic", &req.Basic},
		{"da", &req.DA},
		{"employee_rate", &req.EmployeeRate},
		{"employer_rate", &req.EmployerRate},
	}
	for _, f := range decimals {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return CalculateRequest{}, &statutory.InputError{Field: f.name, Value: v, Reason: "must be a number"}
		}
		*f.dst = &d
	}

	ints := []struct {
		name string
		dst  **int
	}{
		{"days_worked", &req.DaysWorked},
		{"num_employees", &req.NumEmployees},
	}
	for _, f := range ints {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return CalculateRequest{}, &statutory.InputError{Field: f.name, Value: v, Reason: "must be a whole number"}
		}
		*f.dst = &n
	}
	return req, nil
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

// fail maps err to a status code; server-side failures are logged.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if statutory.IsClientError(err) {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	h.Logger.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "Internal error", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
