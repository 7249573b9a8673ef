/*
Package holiday provides the government holiday calendar.

PURPOSE:
  Lists national (central government) holidays for a year, adds a state's
  regional holidays where the tables carry them, and derives an approximate
  working-day count.

SOURCES:
  Calendars come from the tables package. Only years present there can be
  queried; any other year is ErrNoCalendar.

ORDERING:
  ForYear sorts by date ascending. The sort is stable, so two holidays on
  the same date keep their table order (national before regional).

SEE ALSO:
  - workdays.go: working-day approximation
  - tables/statutory.yaml: the calendars section
*/
package holiday

import (
	"fmt"
	"sort"
	"time"

	"github.com/warp/statutory-engine/statutory"
	"github.com/warp/statutory-engine/tables"
)

// ErrNoCalendar is returned for a year with no holiday table.
var ErrNoCalendar = fmt.Errorf("no holiday calendar: %w", statutory.ErrUnsupportedVariant)

// Category classifies a holiday.
type Category string

const (
	Gazetted   Category = "Gazetted"
	Restricted Category = "Restricted" // employees pick a limited number
	State      Category = "State"
)

// Entry is one holiday.
type Entry struct {
	Date     time.Time
	Name     string
	Category Category
}

// Calendar answers holiday queries against one set of tables.
type Calendar struct {
	t *tables.Tables
}

func New(t *tables.Tables) *Calendar {
	return &Calendar{t: t}
}

// Default returns a calendar over the embedded tables.
func Default() *Calendar {
	return New(tables.Default())
}

// Years lists the years with a holiday table.
func (c *Calendar) Years() []int {
	return c.t.Years()
}

// ForYear returns the national holidays plus the state's regional holidays,
// sorted by date.
func (c *Calendar) ForYear(year int, state string) ([]Entry, error) {
	cal, ok := c.t.CalendarFor(year)
	if !ok {
		return nil, fmt.Errorf("%w for %d", ErrNoCalendar, year)
	}

	rows := cal.Rows(state)
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{Date: r.Day, Name: r.Name, Category: Category(r.Category)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

// IsHoliday reports whether date is a holiday for state. Years without a
// table have no holidays.
func (c *Calendar) IsHoliday(date time.Time, state string) bool {
	entries, err := c.ForYear(date.Year(), state)
	if err != nil {
		return false
	}
	y, m, d := date.Date()
	for _, e := range entries {
		ey, em, ed := e.Date.Date()
		if ey == y && em == m && ed == d {
			return true
		}
	}
	return false
}

// =============================================================================
// MONTH VIEW
// =============================================================================

// Month groups one month's holidays for display.
type Month struct {
	Month    time.Month
	Holidays []MonthHoliday
}

// MonthHoliday is a holiday as shown in a month view.
type MonthHoliday struct {
	Day      int
	Weekday  time.Weekday
	Name     string
	Category Category
}

// ByMonth groups ForYear's result by month, skipping months without holidays.
func (c *Calendar) ByMonth(year int, state string) ([]Month, error) {
	entries, err := c.ForYear(year, state)
	if err != nil {
		return nil, err
	}

	var months []Month
	for _, e := range entries {
		if len(months) == 0 || months[len(months)-1].Month != e.Date.Month() {
			months = append(months, Month{Month: e.Date.Month()})
		}
		cur := &months[len(months)-1]
		cur.Holidays = append(cur.Holidays, MonthHoliday{
			Day:      e.Date.Day(),
			Weekday:  e.Date.Weekday(),
			Name:     e.Name,
			Category: e.Category,
		})
	}
	return months, nil
}
