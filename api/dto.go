/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Calculator results
  carry decimal.Decimal money; the wire carries plain JSON numbers with two
  decimals so browser clients can use them directly.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Calculations:
    CalculateRequest, CalculateResponse
    GratuityDTO, ContributionDTO (+ RangeDTO), InsuranceDTO, LeaveDTO,
    ChecklistDTO

  Calendar:
    HolidayDTO, MonthDTO, WorkingDaysDTO

VALIDATION:
  Presence of required fields is checked in Evaluate (calculate.go); range
  checks belong to the calculators.

SEE ALSO:
  - calculate.go: Builds DTOs from calculator results
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/statutory-engine/compliance"
	"github.com/warp/statutory-engine/holiday"
	"github.com/warp/statutory-engine/statutory"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculateRequest is the body of POST /api/calculate. The download endpoint
// fills the same structure from query parameters.
//
// Numeric fields accept JSON numbers or quoted strings. A nil pointer means
// the field was not supplied.
type CalculateRequest struct {
	Type              string           `json:"type"`
	Salary            *decimal.Decimal `json:"salary,omitempty"`
	Years             *decimal.Decimal `json:"years,omitempty"`
	Sector            string           `json:"sector,omitempty"`
	Basic             *decimal.Decimal `json:"basic,omitempty"`
	DA                *decimal.Decimal `json:"da,omitempty"`
	EmployeeRate      *decimal.Decimal `json:"employee_rate,omitempty"`
	EmployerRate      *decimal.Decimal `json:"employer_rate,omitempty"`
	State             string           `json:"state,omitempty"`
	DaysWorked        *int             `json:"days_worked,omitempty"`
	EstablishmentType string           `json:"establishment_type,omitempty"`
	NumEmployees      *int             `json:"num_employees,omitempty"`
	IndustryType      string           `json:"industry_type,omitempty"`
}

// CalculateResponse wraps a successful calculation.
type CalculateResponse struct {
	Success bool `json:"success"`
	Result  any  `json:"result"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// GratuityDTO represents a gratuity result.
type GratuityDTO struct {
	Eligible bool    `json:"eligible"`
	Amount   float64 `json:"amount"`
	Sector   string  `json:"sector"`
	Capped   bool    `json:"capped,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

// ContributionDTO represents a PF, GPF or NPS result.
type ContributionDTO struct {
	Scheme          string    `json:"scheme"`
	Sector          string    `json:"sector"`
	EligibleWage    float64   `json:"eligible_wage"`
	EmployeeShare   float64   `json:"employee_contribution"`
	EmployerShare   float64   `json:"employer_contribution"`
	EmployerPension float64   `json:"employer_pension,omitempty"`
	EmployerFund    float64   `json:"employer_fund,omitempty"`
	Total           float64   `json:"total"`
	Range           *RangeDTO `json:"range,omitempty"`
}

// RangeDTO is the GPF subscription range.
type RangeDTO struct {
	Minimum         float64 `json:"minimum"`
	MinimumRate     float64 `json:"minimum_rate"`
	Recommended     float64 `json:"recommended"`
	RecommendedRate float64 `json:"recommended_rate"`
	Maximum         float64 `json:"maximum"`
	MaximumRate     float64 `json:"maximum_rate"`
}

// InsuranceDTO represents an ESI result.
type InsuranceDTO struct {
	Eligible      bool    `json:"eligible"`
	State         string  `json:"state"`
	EmployeeShare float64 `json:"employee_contribution"`
	EmployerShare float64 `json:"employer_contribution"`
	Total         float64 `json:"total"`
	Reason        string  `json:"reason,omitempty"`
}

// LeaveDTO represents a leave entitlement.
type LeaveDTO struct {
	Sector            string `json:"sector"`
	State             string `json:"state"`
	EstablishmentType string `json:"establishment_type"`
	EarnedLeave       int    `json:"earned_leave"`
	CasualLeave       int    `json:"casual_leave"`
	SickLeave         int    `json:"sick_leave"`
	Total             int    `json:"total"`
	Maternity         int    `json:"maternity_leave,omitempty"`
	Paternity         int    `json:"paternity_leave,omitempty"`
	ChildCare         int    `json:"child_care_leave,omitempty"`
}

// ChecklistDTO represents a compliance checklist.
type ChecklistDTO struct {
	State         string   `json:"state"`
	EmployeeCount int      `json:"num_employees"`
	Industry      string   `json:"industry_type"`
	Items         []string `json:"items"`
}

// HolidayDTO represents a holiday in API responses.
type HolidayDTO struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// MonthDTO groups the holidays of one month.
type MonthDTO struct {
	Month    string        `json:"month"`
	Holidays []MonthDayDTO `json:"holidays"`
}

// MonthDayDTO is one holiday inside a MonthDTO.
type MonthDayDTO struct {
	Day      int    `json:"day"`
	Weekday  string `json:"weekday"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// WorkingDaysDTO represents a working-day summary.
type WorkingDaysDTO struct {
	Year         int    `json:"year"`
	State        string `json:"state"`
	TotalDays    int    `json:"total_days"`
	HolidayCount int    `json:"holidays"`
	SundayCount  int    `json:"sundays"`
	WorkingDays  int    `json:"working_days"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func money(d decimal.Decimal) float64 {
	return statutory.Round(d).InexactFloat64()
}

func toGratuityDTO(r statutory.GratuityResult) GratuityDTO {
	return GratuityDTO{
		Eligible: r.Eligible,
		Amount:   money(r.Amount),
		Sector:   r.Sector.String(),
		Capped:   r.Capped,
		Reason:   r.Reason,
	}
}

func toContributionDTO(r statutory.ContributionResult) ContributionDTO {
	dto := ContributionDTO{
		Scheme:          string(r.Scheme),
		Sector:          r.Sector.String(),
		EligibleWage:    money(r.EligibleWage),
		EmployeeShare:   money(r.EmployeeShare),
		EmployerShare:   money(r.EmployerShare),
		EmployerPension: money(r.EmployerPension),
		EmployerFund:    money(r.EmployerFund),
		Total:           money(r.Total),
	}
	if rg := r.Range; rg != nil {
		dto.Range = &RangeDTO{
			Minimum:         money(rg.Minimum),
			MinimumRate:     rg.MinimumRate.InexactFloat64(),
			Recommended:     money(rg.Recommended),
			RecommendedRate: rg.RecommendedRate.InexactFloat64(),
			Maximum:         money(rg.Maximum),
			MaximumRate:     rg.MaximumRate.InexactFloat64(),
		}
	}
	return dto
}

func toInsuranceDTO(r statutory.InsuranceResult) InsuranceDTO {
	return InsuranceDTO{
		Eligible:      r.Eligible,
		State:         r.State,
		EmployeeShare: money(r.EmployeeShare),
		EmployerShare: money(r.EmployerShare),
		Total:         money(r.Total),
		Reason:        r.Reason,
	}
}

func toLeaveDTO(r statutory.LeaveResult) LeaveDTO {
	return LeaveDTO{
		Sector:            r.Sector.String(),
		State:             r.State,
		EstablishmentType: r.EstablishmentType,
		EarnedLeave:       r.EarnedLeave,
		CasualLeave:       r.CasualLeave,
		SickLeave:         r.SickLeave,
		Total:             r.Total,
		Maternity:         r.Maternity,
		Paternity:         r.Paternity,
		ChildCare:         r.ChildCare,
	}
}

func toChecklistDTO(c compliance.Checklist) ChecklistDTO {
	return ChecklistDTO{
		State:         c.State,
		EmployeeCount: c.EmployeeCount,
		Industry:      c.Industry,
		Items:         c.Strings(),
	}
}

// ToHolidayDTOs converts calendar entries for the wire.
func ToHolidayDTOs(entries []holiday.Entry) []HolidayDTO {
	dtos := make([]HolidayDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, HolidayDTO{
			Date:     e.Date.Format("2006-01-02"),
			Name:     e.Name,
			Category: string(e.Category),
		})
	}
	return dtos
}

// ToMonthDTOs converts a month grouping for the wire.
func ToMonthDTOs(months []holiday.Month) []MonthDTO {
	dtos := make([]MonthDTO, 0, len(months))
	for _, m := range months {
		days := make([]MonthDayDTO, 0, len(m.Holidays))
		for _, h := range m.Holidays {
			days = append(days, MonthDayDTO{
				Day:      h.Day,
				Weekday:  h.Weekday.String(),
				Name:     h.Name,
				Category: string(h.Category),
			})
		}
		dtos = append(dtos, MonthDTO{Month: m.Month.String(), Holidays: days})
	}
	return dtos
}

// ToWorkingDaysDTO converts a working-day summary for the wire.
func ToWorkingDaysDTO(s holiday.WorkingDaysSummary) WorkingDaysDTO {
	return WorkingDaysDTO{
		Year:         s.Year,
		State:        s.State,
		TotalDays:    s.TotalDays,
		HolidayCount: s.HolidayCount,
		SundayCount:  s.SundayCount,
		WorkingDays:  s.WorkingDays,
	}
}
