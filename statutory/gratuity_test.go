package statutory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/statutory-engine/statutory"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func money(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msgAndArgs...)
}

// =============================================================================
// PRIVATE SECTOR
// =============================================================================

func TestGratuity_PrivateBelowMinimumService(t *testing.T) {
	calc := statutory.Default()

	for _, years := range []string{"0", "1", "4", "4.99"} {
		res, err := calc.Gratuity(d("50000"), d(years), statutory.Private)
		require.NoError(t, err)

		assert.False(t, res.Eligible, "years=%s", years)
		assert.True(t, res.Amount.IsZero(), "ineligible amount must be zero")
		assert.False(t, res.Capped)
		assert.Equal(t, "minimum 5 years service required", res.Reason)
		assert.Equal(t, statutory.Private, res.Sector)
	}
}

func TestGratuity_PrivateFormula(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		years  string
		want   string
	}{
		{"six years", "50000", "6", "173076.92"},
		{"exactly five years", "30000", "5", "86538.46"},
		{"fifteen years", "100000", "15", "865384.62"},
		{"fractional years", "26000", "7.5", "112500.00"},
		{"zero salary", "0", "10", "0.00"},
	}

	calc := statutory.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Gratuity(d(tt.salary), d(tt.years), statutory.Private)
			require.NoError(t, err)

			assert.True(t, res.Eligible)
			assert.False(t, res.Capped)
			assert.Empty(t, res.Reason)
			money(t, tt.want, res.Amount)
		})
	}
}

func TestGratuity_PrivateSingleYearFigure(t *testing.T) {
	// One year of service at 50,000 is worth 50000/26*15 = 28846.15; six years
	// is six times that before rounding.
	calc := statutory.Default()

	res, err := calc.Gratuity(d("50000"), d("6"), statutory.Private)
	require.NoError(t, err)

	single := d("50000").Div(d("26")).Mul(d("15"))
	money(t, "28846.15", statutory.Round(single))
	money(t, statutory.Round(single.Mul(d("6"))).StringFixed(2), res.Amount)
}

func TestGratuity_PrivateCap(t *testing.T) {
	// GIVEN: A salary and tenure whose raw gratuity is 2,307,692.31
	// WHEN: Calculating private-sector gratuity
	// THEN: The amount is held at 2,000,000 and flagged as capped
	calc := statutory.Default()

	res, err := calc.Gratuity(d("100000"), d("40"), statutory.Private)
	require.NoError(t, err)

	assert.True(t, res.Eligible)
	assert.True(t, res.Capped)
	money(t, "2000000.00", res.Amount)
}

func TestGratuity_PrivateJustBelowCapIsNotCapped(t *testing.T) {
	calc := statutory.Default()

	res, err := calc.Gratuity(d("346666"), d("10"), statutory.Private)
	require.NoError(t, err)

	assert.False(t, res.Capped)
	money(t, "1999996.15", res.Amount)
}

func TestGratuity_PrivateMatchesClosedForm(t *testing.T) {
	calc := statutory.Default()
	limit := d("2000000")

	for _, salary := range []string{"12000", "33333.33", "75000", "250000"} {
		for _, years := range []string{"5", "9", "12.5", "30"} {
			res, err := calc.Gratuity(d(salary), d(years), statutory.Private)
			require.NoError(t, err)

			raw := d(salary).Div(d("26")).Mul(d("15")).Mul(d(years))
			want := statutory.Round(decimal.Min(raw, limit))
			assert.True(t, want.Equal(res.Amount), "salary=%s years=%s want=%s got=%s", salary, years, want, res.Amount)
			assert.Equal(t, raw.GreaterThan(limit), res.Capped)
		}
	}
}

// =============================================================================
// GOVERNMENT SECTOR
// =============================================================================

func TestGratuity_GovernmentBelowMinimumService(t *testing.T) {
	calc := statutory.Default()

	res, err := calc.Gratuity(d("30000"), d("8"), statutory.Government)
	require.NoError(t, err)

	assert.False(t, res.Eligible)
	assert.True(t, res.Amount.IsZero())
	assert.Equal(t, "minimum 10 years qualifying service required", res.Reason)
	assert.Equal(t, statutory.Government, res.Sector)
}

func TestGratuity_GovernmentFormula(t *testing.T) {
	calc := statutory.Default()

	res, err := calc.Gratuity(d("50000"), d("15"), statutory.Government)
	require.NoError(t, err)

	assert.True(t, res.Eligible)
	money(t, "432692.31", res.Amount)
}

func TestGratuity_GovernmentIsNeverCapped(t *testing.T) {
	// GIVEN: A raw amount well above the private-sector cap
	// THEN: Government gratuity is paid in full
	calc := statutory.Default()

	res, err := calc.Gratuity(d("200000"), d("35"), statutory.Government)
	require.NoError(t, err)

	assert.False(t, res.Capped)
	money(t, "4038461.54", res.Amount)
}

// =============================================================================
// ERRORS AND DETERMINISM
// =============================================================================

func TestGratuity_UnknownSector(t *testing.T) {
	calc := statutory.Default()

	_, err := calc.Gratuity(d("50000"), d("6"), statutory.Sector(0))

	assert.ErrorIs(t, err, statutory.ErrUnsupportedVariant)
	var ve *statutory.VariantError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "sector", ve.Kind)
}

func TestGratuity_NegativeInputs(t *testing.T) {
	calc := statutory.Default()

	_, err := calc.Gratuity(d("-1"), d("6"), statutory.Private)
	assert.ErrorIs(t, err, statutory.ErrInvalidInput)

	_, err = calc.Gratuity(d("50000"), d("-6"), statutory.Government)
	var ie *statutory.InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "years_of_service", ie.Field)
}

func TestGratuity_Idempotent(t *testing.T) {
	calc := statutory.Default()

	first, err := calc.Gratuity(d("64321.50"), d("11"), statutory.Private)
	require.NoError(t, err)
	second, err := calc.Gratuity(d("64321.50"), d("11"), statutory.Private)
	require.NoError(t, err)

	assert.Equal(t, first.Amount.String(), second.Amount.String())
	assert.Equal(t, first.Eligible, second.Eligible)
	assert.Equal(t, first.Capped, second.Capped)
}
