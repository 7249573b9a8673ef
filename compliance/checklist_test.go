package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/statutory-engine/compliance"
	"github.com/warp/statutory-engine/statutory"
)

var universal = []string{
	"Obtain Trade License from local municipal authority",
	"Register for GST if annual turnover exceeds Rs. 20 lakhs",
}

func build(t *testing.T, state string, employees int, industry string) compliance.Checklist {
	t.Helper()
	cl, err := compliance.Build(state, employees, industry)
	require.NoError(t, err)
	return cl
}

func TestBuild_NoEmployeesOnlyUniversal(t *testing.T) {
	// GIVEN: No employees, an industry and a state without extra rules
	// THEN: Only the two universal items apply
	cl := build(t, "Delhi", 0, "retail")

	assert.Equal(t, universal, cl.Strings())
	for _, item := range cl.Items {
		assert.Equal(t, compliance.CategoryUniversal, item.Category)
	}
}

func TestBuild_ZeroEmployeeFactoryStillGetsIndustryItems(t *testing.T) {
	cl := build(t, "Delhi", 0, "factory")

	assert.Equal(t, append(append([]string{}, universal...),
		"Maintain factory registers as per Factories Act",
		"Conduct annual medical examination of workers",
	), cl.Strings())
}

func TestBuild_FactoryWith25EmployeesExactSequence(t *testing.T) {
	// GIVEN: A factory with 25 employees in a state without extra rules
	// THEN: Thresholds 1, 10 and 20 fire in order; 30, 50 and 100 do not
	cl := build(t, "Delhi", 25, "factory")

	want := []string{
		"Obtain Trade License from local municipal authority",
		"Register for GST if annual turnover exceeds Rs. 20 lakhs",
		"Maintain attendance register for all employees",
		"Issue appointment letters to all employees",
		"Register under applicable Shops and Establishment Act",
		"Register under Factories Act, 1948",
		"Obtain Factory License from State Factory Inspector",
		"Register for Employee Provident Fund (EPF)",
		"Register for Employee State Insurance (ESI)",
		"Comply with Payment of Gratuity Act, 1972",
		"Maintain factory registers as per Factories Act",
		"Conduct annual medical examination of workers",
	}
	assert.Equal(t, want, cl.Strings())
	assert.Equal(t, 12, cl.Len())
}

func TestBuild_MaharashtraFactory25(t *testing.T) {
	cl := build(t, "Maharashtra", 25, "Factory")

	got := cl.Strings()
	require.Len(t, got, 14)
	assert.Equal(t, []string{
		"Register under Maharashtra Shops and Establishment Act",
		"Register for Professional Tax in Maharashtra",
	}, got[12:])
	assert.Equal(t, compliance.CategoryState, cl.Items[13].Category)
}

func TestBuild_LargeITCompanyAllThresholds(t *testing.T) {
	cl := build(t, "karnataka", 150, "Software")

	want := []string{
		"Obtain Trade License from local municipal authority",
		"Register for GST if annual turnover exceeds Rs. 20 lakhs",
		"Maintain attendance register for all employees",
		"Issue appointment letters to all employees",
		"Register under applicable Shops and Establishment Act",
		"Register for Employee Provident Fund (EPF)",
		"Register for Employee State Insurance (ESI)",
		"Comply with Payment of Gratuity Act, 1972",
		"Constitute Internal Complaints Committee (ICC) for POSH Act",
		"Register under Contract Labour Act (if applicable)",
		"Comply with IT Act provisions for data protection",
		"Register under Professional Tax Act",
		"Register under Karnataka Shops and Commercial Establishment Act",
	}
	assert.Equal(t, want, cl.Strings())
}

func TestBuild_SafetyOfficerAtFifty(t *testing.T) {
	below := build(t, "Delhi", 49, "factory").Strings()
	at := build(t, "Delhi", 50, "factory").Strings()

	assert.NotContains(t, below, "Appoint Safety Officer")
	assert.Equal(t, "Appoint Safety Officer", at[len(at)-1])
}

func TestBuild_ThresholdsAreCumulative(t *testing.T) {
	counts := []int{0, 1, 9, 10, 19, 20, 29, 30, 99, 100, 1000}

	prev := build(t, "Delhi", counts[0], "services").Strings()
	for _, n := range counts[1:] {
		cur := build(t, "Delhi", n, "services").Strings()
		assert.GreaterOrEqual(t, len(cur), len(prev), "n=%d", n)
		for _, item := range prev {
			assert.Contains(t, cur, item, "n=%d lost an item", n)
		}
		prev = cur
	}
}

func TestBuild_MaharashtraProfessionalTaxFromFive(t *testing.T) {
	four := build(t, "maharashtra", 4, "retail").Strings()
	five := build(t, "maharashtra", 5, "retail").Strings()

	assert.NotContains(t, four, "Register for Professional Tax in Maharashtra")
	assert.Contains(t, five, "Register for Professional Tax in Maharashtra")
}

func TestBuild_StateMatchIsExactAfterFolding(t *testing.T) {
	assert.Contains(t, build(t, " TAMIL NADU ", 1, "retail").Strings(),
		"Register under Tamil Nadu Shops and Establishment Act")
	assert.Len(t, build(t, "Tamil", 1, "retail").Strings(), 4)
}

func TestBuild_Deterministic(t *testing.T) {
	first := build(t, "Maharashtra", 120, "factory")
	second := build(t, "Maharashtra", 120, "factory")

	assert.Equal(t, first, second)
}

func TestBuild_NegativeEmployees(t *testing.T) {
	_, err := compliance.Build("Delhi", -1, "factory")
	assert.ErrorIs(t, err, statutory.ErrInvalidInput)
}
