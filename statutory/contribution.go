package statutory

import "github.com/shopspring/decimal"

// Scheme identifies the fund a contribution goes to.
type Scheme string

const (
	SchemeEPF Scheme = "epf"
	SchemeGPF Scheme = "gpf"
	SchemeNPS Scheme = "nps"
)

// ContributionResult is a monthly fund contribution.
//
// Invariants (all at 2dp):
//
//	Total == EmployeeShare + EmployerShare
//	EmployerShare == EmployerPension + EmployerFund   (EPF only; zero otherwise)
type ContributionResult struct {
	Scheme          Scheme
	Sector          Sector
	EligibleWage    decimal.Decimal
	EmployeeShare   decimal.Decimal
	EmployerShare   decimal.Decimal
	EmployerPension decimal.Decimal
	EmployerFund    decimal.Decimal
	Total           decimal.Decimal

	// Range is set for GPF only, where the subscriber picks the rate.
	Range *ContributionRange
}

// ContributionRange bounds a voluntary-rate subscription.
type ContributionRange struct {
	Minimum         decimal.Decimal
	MinimumRate     decimal.Decimal
	Recommended     decimal.Decimal
	RecommendedRate decimal.Decimal
	Maximum         decimal.Decimal
	MaximumRate     decimal.Decimal
}

// PF computes the provident fund contribution for the sector.
//
// Private (EPF): basic+da capped at the wage ceiling; 12% from the employee,
// 12% from the employer, of which 8.33% goes to the pension scheme.
// Government (GPF): no ceiling, no employer share; the subscription is a
// range over basic pay and EmployeeShare reports the recommended rate.
func (c *Calculator) PF(basic, da decimal.Decimal, sector Sector) (ContributionResult, error) {
	if err := firstError(nonNegative("basic", basic), nonNegative("da", da)); err != nil {
		return ContributionResult{}, err
	}

	switch sector {
	case Private:
		return c.epf(basic, da), nil
	case Government:
		return c.gpf(basic), nil
	default:
		return ContributionResult{}, &VariantError{Kind: "sector", Value: sector.String()}
	}
}

func (c *Calculator) epf(basic, da decimal.Decimal) ContributionResult {
	rates := c.t.ProvidentFund
	wage := decimal.Min(basic.Add(da), rates.WageCeiling)

	employee := Round(percent(wage, rates.EmployeeRate))
	employer := Round(percent(wage, rates.EmployerRate))
	pension := Round(percent(wage, rates.PensionRate))

	return ContributionResult{
		Scheme:          SchemeEPF,
		Sector:          Private,
		EligibleWage:    Round(wage),
		EmployeeShare:   employee,
		EmployerShare:   employer,
		EmployerPension: pension,
		EmployerFund:    employer.Sub(pension),
		Total:           employee.Add(employer),
	}
}

func (c *Calculator) gpf(basic decimal.Decimal) ContributionResult {
	rates := c.t.GPF
	recommended := Round(percent(basic, rates.RecommendedRate))

	return ContributionResult{
		Scheme:        SchemeGPF,
		Sector:        Government,
		EligibleWage:  Round(basic),
		EmployeeShare: recommended,
		EmployerShare: zero,
		Total:         recommended,
		Range: &ContributionRange{
			Minimum:         Round(percent(basic, rates.MinimumRate)),
			MinimumRate:     rates.MinimumRate,
			Recommended:     recommended,
			RecommendedRate: rates.RecommendedRate,
			Maximum:         Round(percent(basic, rates.MaximumRate)),
			MaximumRate:     rates.MaximumRate,
		},
	}
}

// NPSDefaultRates returns the scheme's standard employee and employer percentages.
func (c *Calculator) NPSDefaultRates() (employee, employer decimal.Decimal) {
	return c.t.NPS.EmployeeRate, c.t.NPS.EmployerRate
}

// NPS computes the national pension scheme contribution on basic+da with no
// ceiling. The scheme only covers government employees here.
func (c *Calculator) NPS(basic, da, employeeRate, employerRate decimal.Decimal) (ContributionResult, error) {
	if err := firstError(
		nonNegative("basic", basic),
		nonNegative("da", da),
		validRate("employee_rate", employeeRate),
		validRate("employer_rate", employerRate),
	); err != nil {
		return ContributionResult{}, err
	}

	base := basic.Add(da)
	employee := Round(percent(base, employeeRate))
	employer := Round(percent(base, employerRate))

	return ContributionResult{
		Scheme:        SchemeNPS,
		Sector:        Government,
		EligibleWage:  Round(base),
		EmployeeShare: employee,
		EmployerShare: employer,
		Total:         employee.Add(employer),
	}, nil
}
