/*
calculate.go - Dispatch from a CalculateRequest to a calculator

PURPOSE:
  One place that turns loosely typed request fields into a calculator call.
  The JSON endpoint, the PDF download endpoint and the statcalc CLI all go
  through Evaluate, so they apply the same defaults and the same required
  field checks.

DEFAULTS (applied here, never inside the calculators):
  sector              "private"
  state               "general"
  establishment_type  "factory"
  da                  0
  employee_rate       NPS table default (10)
  employer_rate       NPS table default (14)

REQUIRED:
  gratuity    salary, years
  pf, gpf     basic
  nps         basic
  esi         salary
  leave       days_worked
  compliance  state, num_employees, industry_type

SEE ALSO:
  - handlers.go: HTTP entry points
  - cmd/statcalc: CLI entry points
*/
package api

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/warp/statutory-engine/compliance"
	"github.com/warp/statutory-engine/report"
	"github.com/warp/statutory-engine/statutory"
)

const (
	defaultState         = "general"
	defaultEstablishment = statutory.EstablishmentFactory
)

// Outcome is an evaluated calculation: the raw result plus the labelled
// inputs a report prints above it.
type Outcome struct {
	Type   statutory.CalcType
	Result any // one of the statutory *Result types or compliance.Checklist
	Inputs []report.Field
}

// DTO returns the wire representation of the result.
func (o Outcome) DTO() any {
	switch r := o.Result.(type) {
	case statutory.GratuityResult:
		return toGratuityDTO(r)
	case statutory.ContributionResult:
		return toContributionDTO(r)
	case statutory.InsuranceResult:
		return toInsuranceDTO(r)
	case statutory.LeaveResult:
		return toLeaveDTO(r)
	case compliance.Checklist:
		return toChecklistDTO(r)
	}
	return o.Result
}

// RenderPDF writes the outcome as a PDF report.
func (o Outcome) RenderPDF(a *report.Assembler, w io.Writer) error {
	if cl, ok := o.Result.(compliance.Checklist); ok {
		return a.Compliance(w, cl)
	}
	return a.Calculation(w, report.Request{Type: o.Type, Inputs: o.Inputs, Result: o.Result})
}

// Evaluate runs the calculator named by req.Type.
func Evaluate(calc *statutory.Calculator, req CalculateRequest) (Outcome, error) {
	ct, err := statutory.ParseCalcType(req.Type)
	if err != nil {
		return Outcome{}, err
	}

	switch ct {
	case statutory.CalcGratuity:
		return evalGratuity(calc, req)
	case statutory.CalcPF, statutory.CalcGPF:
		return evalPF(calc, ct, req)
	case statutory.CalcNPS:
		return evalNPS(calc, req)
	case statutory.CalcESI:
		return evalInsurance(calc, req)
	case statutory.CalcLeave:
		return evalLeave(calc, req)
	case statutory.CalcCompliance:
		return evalCompliance(req)
	}
	return Outcome{}, &statutory.VariantError{Kind: "calculation type", Value: req.Type}
}

func evalGratuity(calc *statutory.Calculator, req CalculateRequest) (Outcome, error) {
	switch {
	case req.Salary == nil:
		return Outcome{}, missing("salary")
	case req.Years == nil:
		return Outcome{}, missing("years")
	}
	sector, err := sectorOrDefault(req.Sector)
	if err != nil {
		return Outcome{}, err
	}

	res, err := calc.Gratuity(*req.Salary, *req.Years, sector)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Type:   statutory.CalcGratuity,
		Result: res,
		Inputs: []report.Field{
			{Label: "Last Drawn Salary (Basic + DA)", Value: report.FormatMoney(*req.Salary)},
			{Label: "Years of Service", Value: req.Years.String() + " years"},
			{Label: "Sector", Value: sector.String()},
		},
	}, nil
}

func evalPF(calc *statutory.Calculator, ct statutory.CalcType, req CalculateRequest) (Outcome, error) {
	if req.Basic == nil {
		return Outcome{}, missing("basic")
	}
	sector := statutory.Government
	if ct == statutory.CalcPF {
		s, err := sectorOrDefault(req.Sector)
		if err != nil {
			return Outcome{}, err
		}
		sector = s
	}
	da := orZero(req.DA)

	res, err := calc.PF(*req.Basic, da, sector)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Type:   ct,
		Result: res,
		Inputs: []report.Field{
			{Label: "Basic Salary", Value: report.FormatMoney(*req.Basic)},
			{Label: "Dearness Allowance", Value: report.FormatMoney(da)},
			{Label: "Sector", Value: sector.String()},
		},
	}, nil
}

func evalNPS(calc *statutory.Calculator, req CalculateRequest) (Outcome, error) {
	if req.Basic == nil {
		return Outcome{}, missing("basic")
	}
	employeeRate, employerRate := calc.NPSDefaultRates()
	if req.EmployeeRate != nil {
		employeeRate = *req.EmployeeRate
	}
	if req.EmployerRate != nil {
		employerRate = *req.EmployerRate
	}
	da := orZero(req.DA)

	res, err := calc.NPS(*req.Basic, da, employeeRate, employerRate)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Type:   statutory.CalcNPS,
		Result: res,
		Inputs: []report.Field{
			{Label: "Basic Salary", Value: report.FormatMoney(*req.Basic)},
			{Label: "Dearness Allowance", Value: report.FormatMoney(da)},
			{Label: "Employee Rate", Value: employeeRate.String() + "%"},
			{Label: "Employer Rate", Value: employerRate.String() + "%"},
		},
	}, nil
}

func evalInsurance(calc *statutory.Calculator, req CalculateRequest) (Outcome, error) {
	if req.Salary == nil {
		return Outcome{}, missing("salary")
	}
	state := orDefault(req.State, defaultState)

	res, err := calc.Insurance(*req.Salary, state)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Type:   statutory.CalcESI,
		Result: res,
		Inputs: []report.Field{
			{Label: "Monthly Salary", Value: report.FormatMoney(*req.Salary)},
			{Label: "State", Value: state},
		},
	}, nil
}

func evalLeave(calc *statutory.Calculator, req CalculateRequest) (Outcome, error) {
	if req.DaysWorked == nil {
		return Outcome{}, missing("days_worked")
	}
	sector, err := sectorOrDefault(req.Sector)
	if err != nil {
		return Outcome{}, err
	}
	state := orDefault(req.State, defaultState)
	establishment := orDefault(req.EstablishmentType, defaultEstablishment)

	res, err := calc.Leave(*req.DaysWorked, state, establishment, sector)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Type:   statutory.CalcLeave,
		Result: res,
		Inputs: []report.Field{
			{Label: "Days Worked", Value: fmt.Sprint(*req.DaysWorked)},
			{Label: "State", Value: state},
			{Label: "Establishment Type", Value: establishment},
			{Label: "Sector", Value: sector.String()},
		},
	}, nil
}

func evalCompliance(req CalculateRequest) (Outcome, error) {
	switch {
	case req.State == "":
		return Outcome{}, missing("state")
	case req.NumEmployees == nil:
		return Outcome{}, missing("num_employees")
	case req.IndustryType == "":
		return Outcome{}, missing("industry_type")
	}

	cl, err := compliance.Build(req.State, *req.NumEmployees, req.IndustryType)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Type:   statutory.CalcCompliance,
		Result: cl,
		Inputs: []report.Field{
			{Label: "State", Value: cl.State},
			{Label: "Number of Employees", Value: fmt.Sprint(cl.EmployeeCount)},
			{Label: "Industry Type", Value: cl.Industry},
		},
	}, nil
}

// =============================================================================
// FIELD HELPERS
// =============================================================================

func missing(field string) error {
	return &statutory.InputError{Field: field, Value: `""`, Reason: "is required"}
}

func sectorOrDefault(s string) (statutory.Sector, error) {
	if s == "" {
		return statutory.Private, nil
	}
	return statutory.ParseSector(s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
