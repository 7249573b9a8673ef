/*
Package tables holds the fixed statutory data every calculator reads.

PURPOSE:
  Contribution rates, wage ceilings, leave entitlements and holiday calendars
  live in one YAML document (statutory.yaml) embedded into the binary. It is
  parsed once, validated, and shared read-only for the life of the process.

IMMUTABILITY:
  Callers receive a *Tables pointer and must treat it as read-only. Slices
  handed out by accessor methods are copies, so sorting or appending to them
  never changes the shared value.

OVERRIDES:
  A deployment can point TABLES_FILE at its own YAML document with the same
  schema (see config package). The override replaces the embedded document
  wholesale; there is no merging.

USAGE:
  t := tables.Default()
  ceiling := t.ProvidentFund.WageCeiling

  custom, err := tables.LoadFile("/etc/statutory/2026.yaml")

SEE ALSO:
  - statutory/: calculators reading the rate sections
  - holiday/: calendar built from the calendars section
*/
package tables

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed statutory.yaml
var embedded []byte

// DateLayout is the format of holiday dates in the YAML document.
const DateLayout = "2006-01-02"

// =============================================================================
// SCHEMA
// =============================================================================

// Tables is the root of the statutory data document.
type Tables struct {
	Gratuity      Gratuity      `yaml:"gratuity"`
	ProvidentFund ProvidentFund `yaml:"provident_fund"`
	GPF           GPF           `yaml:"gpf"`
	NPS           NPS           `yaml:"nps"`
	Insurance     Insurance     `yaml:"insurance"`
	Leave         Leave         `yaml:"leave"`
	Calendars     []Calendar    `yaml:"calendars"`
}

type Gratuity struct {
	Private    GratuityRule `yaml:"private"`
	Government GratuityRule `yaml:"government"`
}

// GratuityRule parameterizes amount = salary * WageDays / MonthDays * years.
// A zero Cap means uncapped.
type GratuityRule struct {
	MinYears  decimal.Decimal `yaml:"min_years"`
	WageDays  decimal.Decimal `yaml:"wage_days"`
	MonthDays decimal.Decimal `yaml:"month_days"`
	Cap       decimal.Decimal `yaml:"cap"`
}

// ProvidentFund rates are percentages. PensionRate is carved out of EmployerRate.
type ProvidentFund struct {
	WageCeiling  decimal.Decimal `yaml:"wage_ceiling"`
	EmployeeRate decimal.Decimal `yaml:"employee_rate"`
	EmployerRate decimal.Decimal `yaml:"employer_rate"`
	PensionRate  decimal.Decimal `yaml:"pension_rate"`
}

type GPF struct {
	MinimumRate     decimal.Decimal `yaml:"minimum_rate"`
	RecommendedRate decimal.Decimal `yaml:"recommended_rate"`
	MaximumRate     decimal.Decimal `yaml:"maximum_rate"`
}

type NPS struct {
	EmployeeRate decimal.Decimal `yaml:"employee_rate"`
	EmployerRate decimal.Decimal `yaml:"employer_rate"`
}

type Insurance struct {
	WageCeiling  decimal.Decimal `yaml:"wage_ceiling"`
	EmployeeRate decimal.Decimal `yaml:"employee_rate"`
	EmployerRate decimal.Decimal `yaml:"employer_rate"`
}

type Leave struct {
	Private    PrivateLeave    `yaml:"private"`
	Government GovernmentLeave `yaml:"government"`
}

type PrivateLeave struct {
	DaysPerEarnedDay int          `yaml:"days_per_earned_day"`
	FactoryEarnedCap int          `yaml:"factory_earned_cap"`
	OtherEarnedCap   int          `yaml:"other_earned_cap"`
	ShopCasual       int          `yaml:"shop_casual"`
	OtherCasual      int          `yaml:"other_casual"`
	ShopSick         int          `yaml:"shop_sick"`
	OtherSick        int          `yaml:"other_sick"`
	RegionalShop     RegionalShop `yaml:"regional_shop"`
}

// RegionalShop is the more generous earned-leave ratio some states grant shops.
type RegionalShop struct {
	States           []string `yaml:"states"`
	DaysPerEarnedDay int      `yaml:"days_per_earned_day"`
	EarnedCap        int      `yaml:"earned_cap"`
}

type GovernmentLeave struct {
	Earned    int `yaml:"earned"`
	Casual    int `yaml:"casual"`
	HalfPay   int `yaml:"half_pay"`
	Maternity int `yaml:"maternity"`
	Paternity int `yaml:"paternity"`
	ChildCare int `yaml:"child_care"`
}

// Calendar is one year's holiday list: the national table plus regional
// supplements keyed by lower-case state name.
type Calendar struct {
	Year     int                     `yaml:"year"`
	National []HolidayRow            `yaml:"national"`
	Regions  map[string][]HolidayRow `yaml:"regions"`
}

type HolidayRow struct {
	Date     string    `yaml:"date"`
	Name     string    `yaml:"name"`
	Category string    `yaml:"category"`
	Day      time.Time `yaml:"-"`
}

// =============================================================================
// LOADING
// =============================================================================

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the embedded tables. The document ships with the binary and
// is covered by tests, so a parse failure here is a build defect.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Load(embedded)
		if err != nil {
			panic(fmt.Sprintf("tables: embedded statutory.yaml: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// LoadFile parses a tables document from disk.
func LoadFile(path string) (*Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	return Load(b)
}

// Load parses and validates a tables document.
func Load(b []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tables: %w", err)
	}
	if err := t.normalize(); err != nil {
		return nil, err
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tables) normalize() error {
	states := t.Leave.Private.RegionalShop.States
	for i, s := range states {
		states[i] = Fold(s)
	}

	for ci := range t.Calendars {
		c := &t.Calendars[ci]
		if err := parseRows(c.Year, c.National); err != nil {
			return err
		}
		regions := make(map[string][]HolidayRow, len(c.Regions))
		for state, rows := range c.Regions {
			if err := parseRows(c.Year, rows); err != nil {
				return err
			}
			regions[Fold(state)] = rows
		}
		c.Regions = regions
	}
	return nil
}

func parseRows(year int, rows []HolidayRow) error {
	for i := range rows {
		day, err := time.Parse(DateLayout, rows[i].Date)
		if err != nil {
			return fmt.Errorf("holiday %q: invalid date %q: %w", rows[i].Name, rows[i].Date, err)
		}
		if day.Year() != year {
			return fmt.Errorf("holiday %q: date %s outside calendar year %d", rows[i].Name, rows[i].Date, year)
		}
		switch rows[i].Category {
		case "Gazetted", "Restricted", "State":
		default:
			return fmt.Errorf("holiday %q: unknown category %q", rows[i].Name, rows[i].Category)
		}
		rows[i].Day = day
	}
	return nil
}

func (t *Tables) validate() error {
	rates := map[string]decimal.Decimal{
		"gratuity.private.month_days":    t.Gratuity.Private.MonthDays,
		"gratuity.government.month_days": t.Gratuity.Government.MonthDays,
		"provident_fund.wage_ceiling":    t.ProvidentFund.WageCeiling,
		"insurance.wage_ceiling":         t.Insurance.WageCeiling,
	}
	for _, name := range sortedKeys(rates) {
		if !rates[name].IsPositive() {
			return fmt.Errorf("tables: %s must be positive", name)
		}
	}

	if t.ProvidentFund.PensionRate.GreaterThan(t.ProvidentFund.EmployerRate) {
		return fmt.Errorf("tables: provident_fund.pension_rate exceeds employer_rate")
	}
	g := t.GPF
	if g.MinimumRate.GreaterThan(g.RecommendedRate) || g.RecommendedRate.GreaterThan(g.MaximumRate) {
		return fmt.Errorf("tables: gpf rates must satisfy minimum <= recommended <= maximum")
	}
	if t.Leave.Private.DaysPerEarnedDay <= 0 || t.Leave.Private.RegionalShop.DaysPerEarnedDay <= 0 {
		return fmt.Errorf("tables: leave days_per_earned_day must be positive")
	}

	seen := make(map[int]bool, len(t.Calendars))
	for _, c := range t.Calendars {
		if seen[c.Year] {
			return fmt.Errorf("tables: duplicate calendar for year %d", c.Year)
		}
		seen[c.Year] = true
	}
	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// CalendarFor returns the calendar for year.
func (t *Tables) CalendarFor(year int) (Calendar, bool) {
	for _, c := range t.Calendars {
		if c.Year == year {
			return c, true
		}
	}
	return Calendar{}, false
}

// Years lists the calendar years available, ascending.
func (t *Tables) Years() []int {
	years := make([]int, 0, len(t.Calendars))
	for _, c := range t.Calendars {
		years = append(years, c.Year)
	}
	sort.Ints(years)
	return years
}

// Rows returns a copy of the national rows followed by the rows of state's
// regional table, if it has one.
func (c Calendar) Rows(state string) []HolidayRow {
	regional := c.Regions[Fold(state)]
	rows := make([]HolidayRow, 0, len(c.National)+len(regional))
	rows = append(rows, c.National...)
	return append(rows, regional...)
}

// HasRegion reports whether state has a regional supplement.
func (c Calendar) HasRegion(state string) bool {
	_, ok := c.Regions[Fold(state)]
	return ok
}

// IsRegionalShopState reports whether state grants the regional shop ratio.
func (l PrivateLeave) IsRegionalShopState(state string) bool {
	s := Fold(state)
	for _, r := range l.RegionalShop.States {
		if r == s {
			return true
		}
	}
	return false
}

// Fold normalizes free-text names (states, establishment and industry types)
// for case-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
