package statutory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/statutory-engine/statutory"
)

func TestInsurance_Eligible(t *testing.T) {
	calc := statutory.Default()

	res, err := calc.Insurance(d("18000"), "general")
	require.NoError(t, err)

	assert.True(t, res.Eligible)
	assert.Empty(t, res.Reason)
	money(t, "135.00", res.EmployeeShare)
	money(t, "585.00", res.EmployerShare)
	money(t, "720.00", res.Total)
}

func TestInsurance_CeilingIsInclusive(t *testing.T) {
	// GIVEN: A salary exactly at the 21,000 ceiling and one paisa above
	// THEN: The first is covered, the second is not
	calc := statutory.Default()

	at, err := calc.Insurance(d("21000"), "general")
	require.NoError(t, err)
	assert.True(t, at.Eligible)
	money(t, "157.50", at.EmployeeShare)
	money(t, "682.50", at.EmployerShare)
	money(t, "840.00", at.Total)

	above, err := calc.Insurance(d("21000.01"), "general")
	require.NoError(t, err)
	assert.False(t, above.Eligible)
	assert.True(t, above.EmployeeShare.IsZero())
	assert.True(t, above.EmployerShare.IsZero())
	assert.True(t, above.Total.IsZero())
	assert.Equal(t, "monthly salary exceeds ESI wage ceiling of 21000", above.Reason)
}

func TestInsurance_RoundsShares(t *testing.T) {
	calc := statutory.Default()

	res, err := calc.Insurance(d("12345.67"), "general")
	require.NoError(t, err)

	money(t, "92.59", res.EmployeeShare)
	money(t, "401.23", res.EmployerShare)
	money(t, "493.82", res.Total)
}

func TestInsurance_StateDoesNotChangeOutcome(t *testing.T) {
	calc := statutory.Default()

	base, err := calc.Insurance(d("20000"), "general")
	require.NoError(t, err)

	for _, state := range []string{"Maharashtra", "assam", "", "Atlantis"} {
		res, err := calc.Insurance(d("20000"), state)
		require.NoError(t, err)

		assert.Equal(t, state, res.State)
		assert.Equal(t, base.Eligible, res.Eligible)
		assert.True(t, base.Total.Equal(res.Total), "state=%q", state)
	}
}

func TestInsurance_NegativeSalary(t *testing.T) {
	calc := statutory.Default()

	_, err := calc.Insurance(d("-0.01"), "general")
	assert.ErrorIs(t, err, statutory.ErrInvalidInput)
}
