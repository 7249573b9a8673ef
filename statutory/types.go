/*
Package statutory computes statutory payroll figures.

PURPOSE:
  Gratuity, provident fund (EPF for private employers, GPF for government),
  the national pension scheme, employee state insurance and annual leave
  entitlement. Every calculation is a pure function of its inputs and the
  shared read-only tables: no I/O, no clock, no hidden state.

KEY CONCEPTS IN THIS FILE (types.go):
  - Sector: private or government, the discriminator every calculator
    dispatches on exactly once
  - CalcType: the tag reports and the API use to name a calculation
  - Money rounding: results are finalized at 2 decimal places

DESIGN PRINCIPLES:
  1. Precision: money is decimal.Decimal, never float64
  2. Ineligibility is a result, not an error
  3. Unknown discriminators and negative inputs are errors (errors.go)

USAGE:
  calc := statutory.Default()
  res, err := calc.Gratuity(decimal.NewFromInt(50000), decimal.NewFromInt(6), statutory.Private)

SEE ALSO:
  - gratuity.go, contribution.go, insurance.go, leave.go: calculators
  - tables/: rates and ceilings
*/
package statutory

import (
	"github.com/shopspring/decimal"
	"github.com/warp/statutory-engine/tables"
)

// =============================================================================
// SECTOR
// =============================================================================

// Sector selects the rule set a calculator applies. The zero value is not a
// valid sector, so an unset field fails dispatch instead of defaulting.
type Sector uint8

const (
	Private Sector = iota + 1
	Government
)

func (s Sector) String() string {
	switch s {
	case Private:
		return "private"
	case Government:
		return "government"
	default:
		return "unknown"
	}
}

// ParseSector accepts "private" or "government", case-insensitively.
func ParseSector(s string) (Sector, error) {
	switch tables.Fold(s) {
	case "private":
		return Private, nil
	case "government":
		return Government, nil
	}
	return 0, &VariantError{Kind: "sector", Value: s}
}

func (s Sector) MarshalText() ([]byte, error) {
	if s != Private && s != Government {
		return nil, &VariantError{Kind: "sector", Value: s.String()}
	}
	return []byte(s.String()), nil
}

func (s *Sector) UnmarshalText(b []byte) error {
	parsed, err := ParseSector(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// =============================================================================
// CALCULATION TYPE
// =============================================================================

// CalcType tags a calculation for reports and the API.
type CalcType string

const (
	CalcGratuity   CalcType = "gratuity"
	CalcPF         CalcType = "pf"
	CalcGPF        CalcType = "gpf"
	CalcNPS        CalcType = "nps"
	CalcESI        CalcType = "esi"
	CalcLeave      CalcType = "leave"
	CalcCompliance CalcType = "compliance"
)

// CalcTypes lists every supported tag in display order.
var CalcTypes = []CalcType{CalcGratuity, CalcPF, CalcGPF, CalcNPS, CalcESI, CalcLeave, CalcCompliance}

// ParseCalcType validates a calculation tag.
func ParseCalcType(s string) (CalcType, error) {
	ct := CalcType(tables.Fold(s))
	for _, known := range CalcTypes {
		if ct == known {
			return ct, nil
		}
	}
	return "", &VariantError{Kind: "calculation type", Value: s}
}

// =============================================================================
// MONEY
// =============================================================================

var (
	hundred = decimal.NewFromInt(100)
	zero    = decimal.Zero
)

// Round finalizes a monetary value at 2 decimal places, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percent returns base * rate / 100, unrounded.
func percent(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}
