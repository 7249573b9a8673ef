package statutory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InsuranceResult is the employee state insurance outcome for one month.
type InsuranceResult struct {
	Eligible      bool
	State         string
	EmployeeShare decimal.Decimal
	EmployerShare decimal.Decimal
	Total         decimal.Decimal
	Reason        string
}

// Insurance tests monthly salary against the wage ceiling (inclusive) and
// computes both shares when covered.
//
// state is carried through to the result but does not change the ceiling or
// the rates. It is the hook for regional overrides.
func (c *Calculator) Insurance(monthlySalary decimal.Decimal, state string) (InsuranceResult, error) {
	if err := nonNegative("monthly_salary", monthlySalary); err != nil {
		return InsuranceResult{}, err
	}

	rates := c.t.Insurance
	if monthlySalary.GreaterThan(rates.WageCeiling) {
		return InsuranceResult{
			State:         state,
			EmployeeShare: zero,
			EmployerShare: zero,
			Total:         zero,
			Reason:        fmt.Sprintf("monthly salary exceeds ESI wage ceiling of %s", rates.WageCeiling),
		}, nil
	}

	employee := Round(percent(monthlySalary, rates.EmployeeRate))
	employer := Round(percent(monthlySalary, rates.EmployerRate))
	return InsuranceResult{
		Eligible:      true,
		State:         state,
		EmployeeShare: employee,
		EmployerShare: employer,
		Total:         employee.Add(employer),
	}, nil
}
