/*
Package compliance builds the registration checklist for an establishment.

ORDERING:
  The checklist is an ordered list and the order is part of the contract:

    1. Universal items every establishment needs
    2. Headcount items, by ascending threshold (1, 10, 20, 30, 100);
       thresholds accumulate, so 25 employees gets 1, 10 and 20
    3. Industry items (factory; IT / software / services)
    4. State items (Maharashtra, Karnataka, Tamil Nadu)

  Within each group items appear in rule-table order (rules.go).

MATCHING:
  State and industry are compared case-insensitively after trimming.

USAGE:
  cl, err := compliance.Build("Maharashtra", 25, "Factory")
  for _, item := range cl.Strings() { ... }
*/
package compliance

import (
	"fmt"

	"github.com/warp/statutory-engine/statutory"
	"github.com/warp/statutory-engine/tables"
)

// Category groups requirements in checklist order.
type Category string

const (
	CategoryUniversal Category = "universal"
	CategoryHeadcount Category = "headcount"
	CategoryIndustry  Category = "industry"
	CategoryState     Category = "state"
)

// Requirement is one checklist line.
type Requirement struct {
	Text     string
	Category Category
}

// Checklist is the ordered set of obligations for one establishment.
type Checklist struct {
	State         string
	EmployeeCount int
	Industry      string
	Items         []Requirement
}

// Strings returns the requirement texts in order.
func (c Checklist) Strings() []string {
	out := make([]string, len(c.Items))
	for i, item := range c.Items {
		out[i] = item.Text
	}
	return out
}

// Len returns the number of requirements.
func (c Checklist) Len() int { return len(c.Items) }

// Build assembles the checklist. The result depends only on its arguments.
func Build(state string, employeeCount int, industry string) (Checklist, error) {
	if employeeCount < 0 {
		return Checklist{}, &statutory.InputError{
			Field:  "employee_count",
			Value:  fmt.Sprint(employeeCount),
			Reason: "must not be negative",
		}
	}

	in := input{
		state:     tables.Fold(state),
		employees: employeeCount,
		industry:  tables.Fold(industry),
	}

	cl := Checklist{State: state, EmployeeCount: employeeCount, Industry: industry}
	for _, group := range groups {
		for _, r := range group.rules {
			if r.applies(in) {
				cl.Items = append(cl.Items, Requirement{Text: r.text, Category: group.category})
			}
		}
	}
	return cl, nil
}
