package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/statutory-engine/statutory"
)

func gratuityBody(d *document, r statutory.GratuityResult) {
	if !r.Eligible {
		d.table([]string{"Calculation Result", "Status"}, []float64{95, 75}, [][]string{
			{"Gratuity Amount", "0.00"},
			{"Status", "Not Eligible"},
			{"Reason", r.Reason},
		}, headerLight)
		return
	}

	formula := "(Salary ÷ 26) × 15 × Years"
	if r.Sector == statutory.Government {
		formula = "(Salary × Years × 15) ÷ 26"
	}
	rows := [][]string{
		{"Gratuity Amount", FormatMoney(r.Amount)},
		{"Status", "Eligible"},
		{"Sector", titleCase(r.Sector.String())},
		{"Formula Used", formula},
	}
	if r.Capped {
		rows = append(rows, []string{"Note", "Amount capped at maximum 20,00,000"})
	}
	d.table([]string{"Calculation Result", "Amount"}, []float64{95, 75}, rows, headerLight)
}

func contributionBody(d *document, r statutory.ContributionResult) {
	widths := []float64{80, 55, 35}
	header := []string{"Contribution Type", "Amount", "Rate"}

	switch r.Scheme {
	case statutory.SchemeGPF:
		rg := r.Range
		d.table(header, widths, [][]string{
			{"Minimum Subscription", FormatMoney(rg.Minimum), pct(rg.MinimumRate)},
			{"Recommended Subscription", FormatMoney(rg.Recommended), pct(rg.RecommendedRate)},
			{"Maximum Subscription", FormatMoney(rg.Maximum), pct(rg.MaximumRate)},
			{"Employer Contribution", FormatMoney(r.EmployerShare), "-"},
		}, headerLight)

	case statutory.SchemeNPS:
		d.table(header, widths, [][]string{
			{"Eligible Wage (Basic + DA)", FormatMoney(r.EligibleWage), ""},
			{"Employee Contribution", FormatMoney(r.EmployeeShare), ratio(r.EmployeeShare, r.EligibleWage)},
			{"Employer Contribution", FormatMoney(r.EmployerShare), ratio(r.EmployerShare, r.EligibleWage)},
			{"Total Monthly NPS", FormatMoney(r.Total), ratio(r.Total, r.EligibleWage)},
		}, headerLight)

	default:
		d.table(header, widths, [][]string{
			{"PF Eligible Salary", FormatMoney(r.EligibleWage), ""},
			{"Employee EPF", FormatMoney(r.EmployeeShare), ratio(r.EmployeeShare, r.EligibleWage)},
			{"Employer EPF", FormatMoney(r.EmployerFund), ratio(r.EmployerFund, r.EligibleWage)},
			{"Employer EPS", FormatMoney(r.EmployerPension), ratio(r.EmployerPension, r.EligibleWage)},
			{"Total Monthly PF", FormatMoney(r.Total), ratio(r.Total, r.EligibleWage)},
		}, headerLight)
	}
}

func insuranceBody(d *document, r statutory.InsuranceResult) {
	if !r.Eligible {
		d.table([]string{"Result", "Status"}, []float64{95, 75}, [][]string{
			{"ESI Eligibility", "Not Eligible"},
			{"Reason", r.Reason},
		}, headerLight)
		return
	}
	d.table([]string{"Contribution Type", "Amount", "Status"}, []float64{80, 55, 35}, [][]string{
		{"Employee ESI", FormatMoney(r.EmployeeShare), ""},
		{"Employer ESI", FormatMoney(r.EmployerShare), ""},
		{"Total ESI", FormatMoney(r.Total), "Eligible"},
	}, headerLight)
}

func leaveBody(d *document, r statutory.LeaveResult) {
	rows := [][]string{
		{"Earned Leave", days(r.EarnedLeave)},
		{"Casual Leave", days(r.CasualLeave)},
		{"Sick Leave", days(r.SickLeave)},
		{"Total Annual Leave", days(r.Total)},
	}
	if r.Sector == statutory.Government {
		rows[2][0] = "Half Pay Leave"
		rows = append(rows,
			[]string{"Maternity Leave (one-time)", days(r.Maternity)},
			[]string{"Paternity Leave (one-time)", days(r.Paternity)},
			[]string{"Child Care Leave (service)", days(r.ChildCare)},
		)
	}
	d.table([]string{"Leave Type", "Days Entitled"}, []float64{95, 75}, rows, headerLight)
}

func days(n int) string {
	return fmt.Sprintf("%d days", n)
}

func pct(rate decimal.Decimal) string {
	return rate.String() + "%"
}

// ratio renders part/whole as a percentage, or "" when whole is zero.
func ratio(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return ""
	}
	return part.Mul(decimal.NewFromInt(100)).Div(whole).Round(2).String() + "%"
}

// FormatMoney renders an amount with 2 decimals and comma thousands
// separators, e.g. 1234567.8 -> "1,234,567.80".
func FormatMoney(v decimal.Decimal) string {
	s := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String() + "." + frac
}
