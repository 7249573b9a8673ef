package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/statutory-engine/compliance"
	"github.com/warp/statutory-engine/report"
	"github.com/warp/statutory-engine/statutory"
)

func newAssembler() *report.Assembler {
	return &report.Assembler{
		Clock:    func() time.Time { return time.Date(2025, time.March, 3, 14, 5, 0, 0, time.UTC) },
		NewID:    func() string { return "ref-0001" },
		Compress: false,
	}
}

func render(t *testing.T, req report.Request) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newAssembler().Calculation(&buf, req))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output is not a PDF")
	return buf.String()
}

func TestCalculation_Gratuity(t *testing.T) {
	res, err := statutory.Default().Gratuity(decimal.NewFromInt(50000), decimal.NewFromInt(6), statutory.Private)
	require.NoError(t, err)

	out := render(t, report.Request{
		Type:   statutory.CalcGratuity,
		Inputs: []report.Field{{"Last Drawn Salary (Basic + DA)", "50,000.00"}, {"Years of Service", "6 years"}},
		Result: res,
	})

	assert.Contains(t, out, "Gratuity Calculation Report")
	assert.Contains(t, out, "173,076.92")
	assert.Contains(t, out, "ref-0001")
	assert.Contains(t, out, "03 March 2025 at 02:05 PM")
}

func TestCalculation_IneligibleGratuityShowsReason(t *testing.T) {
	res, err := statutory.Default().Gratuity(decimal.NewFromInt(30000), decimal.NewFromInt(4), statutory.Private)
	require.NoError(t, err)

	out := render(t, report.Request{Type: statutory.CalcGratuity, Result: res})

	assert.Contains(t, out, "Not Eligible")
	assert.Contains(t, out, "minimum 5 years service required")
}

func TestCalculation_EveryCalculatorLayout(t *testing.T) {
	calc := statutory.Default()
	epf, err := calc.PF(decimal.NewFromInt(25000), decimal.NewFromInt(3000), statutory.Private)
	require.NoError(t, err)
	gpf, err := calc.PF(decimal.NewFromInt(40000), decimal.NewFromInt(5000), statutory.Government)
	require.NoError(t, err)
	nps, err := calc.NPS(decimal.NewFromInt(45000), decimal.NewFromInt(8000), decimal.NewFromInt(10), decimal.NewFromInt(14))
	require.NoError(t, err)
	esi, err := calc.Insurance(decimal.NewFromInt(18000), "general")
	require.NoError(t, err)
	leave, err := calc.Leave(0, "", "", statutory.Government)
	require.NoError(t, err)

	tests := []struct {
		ct     statutory.CalcType
		result any
		want   []string
	}{
		{statutory.CalcPF, epf, []string{"Provident Fund Calculation Report", "1,249.50", "8.33%"}},
		{statutory.CalcPF, gpf, []string{"General Provident Fund Calculation Report", "40,000.00"}},
		{statutory.CalcGPF, gpf, []string{"Recommended Subscription", "4,800.00"}},
		{statutory.CalcNPS, nps, []string{"National Pension Scheme Calculation Report", "12,720.00"}},
		{statutory.CalcESI, esi, []string{"ESI Calculation Report", "585.00"}},
		{statutory.CalcLeave, leave, []string{"Leave Entitlement Report", "Half Pay Leave", "730 days"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.ct), func(t *testing.T) {
			out := render(t, report.Request{Type: tt.ct, Result: tt.result})
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestCalculation_Errors(t *testing.T) {
	a := newAssembler()
	var buf bytes.Buffer

	err := a.Calculation(&buf, report.Request{Type: "bonus"})
	assert.ErrorIs(t, err, statutory.ErrUnsupportedVariant)

	err = a.Calculation(&buf, report.Request{Type: statutory.CalcCompliance})
	assert.ErrorIs(t, err, statutory.ErrUnsupportedVariant)

	err = a.Calculation(&buf, report.Request{Type: statutory.CalcESI, Result: statutory.GratuityResult{}})
	assert.Error(t, err)

	err = a.Calculation(&buf, report.Request{Type: statutory.CalcNPS, Result: statutory.ContributionResult{Scheme: statutory.SchemeEPF}})
	assert.Error(t, err)

	assert.Zero(t, buf.Len(), "nothing is written on error")
}

func TestCompliance(t *testing.T) {
	cl, err := compliance.Build("Maharashtra", 25, "factory")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, newAssembler().Compliance(&buf, cl))
	out := buf.String()

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, out, "Compliance Requirements Checklist")
	assert.Contains(t, out, "Register for Professional Tax in Maharashtra")
	assert.Contains(t, out, "Pending")
}

func TestFormatMoney(t *testing.T) {
	tests := map[string]string{
		"0":         "0.00",
		"999.999":   "1,000.00",
		"1234567.8": "1,234,567.80",
		"100":       "100.00",
		"-98765.43": "-98,765.43",
		"2000000":   "2,000,000.00",
	}
	for in, want := range tests {
		assert.Equal(t, want, report.FormatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "gratuity_report.pdf", report.Filename(statutory.CalcGratuity))
}
