package compliance

// rule is one conditional checklist line. Empty industries or states match
// everything.
type rule struct {
	text         string
	minEmployees int
	industries   []string
	states       []string
}

type input struct {
	state     string
	employees int
	industry  string
}

func (r rule) applies(in input) bool {
	return in.employees >= r.minEmployees &&
		matches(r.industries, in.industry) &&
		matches(r.states, in.state)
}

func matches(allowed []string, v string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

var (
	factory     = []string{"factory"}
	knowledge   = []string{"it", "software", "services"}
	maharashtra = []string{"maharashtra"}
)

type group struct {
	category Category
	rules    []rule
}

// groups is evaluated top to bottom; see the package doc for the ordering contract.
var groups = []group{
	{CategoryUniversal, []rule{
		{text: "Obtain Trade License from local municipal authority"},
		{text: "Register for GST if annual turnover exceeds Rs. 20 lakhs"},
	}},
	{CategoryHeadcount, []rule{
		{text: "Maintain attendance register for all employees", minEmployees: 1},
		{text: "Issue appointment letters to all employees", minEmployees: 1},

		{text: "Register under applicable Shops and Establishment Act", minEmployees: 10},
		{text: "Register under Factories Act, 1948", minEmployees: 10, industries: factory},
		{text: "Obtain Factory License from State Factory Inspector", minEmployees: 10, industries: factory},

		{text: "Register for Employee Provident Fund (EPF)", minEmployees: 20},
		{text: "Register for Employee State Insurance (ESI)", minEmployees: 20},
		{text: "Comply with Payment of Gratuity Act, 1972", minEmployees: 20},

		{text: "Constitute Internal Complaints Committee (ICC) for POSH Act", minEmployees: 30},

		{text: "Register under Contract Labour Act (if applicable)", minEmployees: 100},
	}},
	{CategoryIndustry, []rule{
		{text: "Maintain factory registers as per Factories Act", industries: factory},
		{text: "Conduct annual medical examination of workers", industries: factory},
		{text: "Appoint Safety Officer", minEmployees: 50, industries: factory},

		{text: "Comply with IT Act provisions for data protection", industries: knowledge},
		{text: "Register under Professional Tax Act", industries: knowledge},
	}},
	{CategoryState, []rule{
		{text: "Register under Maharashtra Shops and Establishment Act", states: maharashtra},
		{text: "Register for Professional Tax in Maharashtra", minEmployees: 5, states: maharashtra},
		{text: "Register under Karnataka Shops and Commercial Establishment Act", states: []string{"karnataka"}},
		{text: "Register under Tamil Nadu Shops and Establishment Act", states: []string{"tamil nadu"}},
	}},
}
