package statutory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/statutory-engine/tables"
)

// GratuityResult is the outcome of a gratuity calculation.
// Eligible=false always carries a zero Amount and a Reason.
type GratuityResult struct {
	Eligible bool
	Amount   decimal.Decimal
	Sector   Sector
	Capped   bool
	Reason   string
}

// Gratuity computes the lump sum due on separation.
//
// Private:    (salary / 26) * 15 * years, at least 5 years, capped at 20 lakh.
// Government: (salary * years * 15) / 26, at least 10 years, uncapped.
//
// lastDrawnSalary is monthly basic plus dearness allowance.
func (c *Calculator) Gratuity(lastDrawnSalary, yearsOfService decimal.Decimal, sector Sector) (GratuityResult, error) {
	if err := firstError(
		nonNegative("last_drawn_salary", lastDrawnSalary),
		nonNegative("years_of_service", yearsOfService),
	); err != nil {
		return GratuityResult{}, err
	}

	switch sector {
	case Private:
		return privateGratuity(c.t.Gratuity.Private, lastDrawnSalary, yearsOfService), nil
	case Government:
		return governmentGratuity(c.t.Gratuity.Government, lastDrawnSalary, yearsOfService), nil
	default:
		return GratuityResult{}, &VariantError{Kind: "sector", Value: sector.String()}
	}
}

func privateGratuity(rule tables.GratuityRule, salary, years decimal.Decimal) GratuityResult {
	if years.LessThan(rule.MinYears) {
		return GratuityResult{
			Amount: zero,
			Sector: Private,
			Reason: fmt.Sprintf("minimum %s years service required", rule.MinYears),
		}
	}

	raw := salary.Div(rule.MonthDays).Mul(rule.WageDays).Mul(years)
	res := GratuityResult{Eligible: true, Sector: Private, Amount: raw}
	if rule.Cap.IsPositive() && raw.GreaterThan(rule.Cap) {
		res.Amount = rule.Cap
		res.Capped = true
	}
	res.Amount = Round(res.Amount)
	return res
}

func governmentGratuity(rule tables.GratuityRule, salary, years decimal.Decimal) GratuityResult {
	if years.LessThan(rule.MinYears) {
		return GratuityResult{
			Amount: zero,
			Sector: Government,
			Reason: fmt.Sprintf("minimum %s years qualifying service required", rule.MinYears),
		}
	}

	amount := salary.Mul(years).Mul(rule.WageDays).Div(rule.MonthDays)
	return GratuityResult{Eligible: true, Sector: Government, Amount: Round(amount)}
}
