package commands

import (
	"github.com/spf13/cobra"

	"github.com/warp/statutory-engine/api"
)

type calendarFlags struct {
	year    int
	state   string
	byMonth bool
}

func (f *calendarFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.year, "year", 0, "calendar year (default latest available)")
	cmd.Flags().StringVar(&f.state, "state", "central", "state whose regional holidays are added")
}

// resolveYear picks the latest calendar when --year is not given.
func (a *app) resolveYear(year int) int {
	if year != 0 {
		return year
	}
	years := a.calendar.Years()
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}

func holidaysCmd(a *app) *cobra.Command {
	var f calendarFlags
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List holidays for a year and state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			year := a.resolveYear(f.year)

			if f.byMonth {
				months, err := a.calendar.ByMonth(year, f.state)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"year":   year,
					"state":  f.state,
					"months": api.ToMonthDTOs(months),
				})
			}

			entries, err := a.calendar.ForYear(year, f.state)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"year":     year,
				"state":    f.state,
				"holidays": api.ToHolidayDTOs(entries),
			})
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&f.byMonth, "by-month", false, "group holidays by month")
	return cmd
}

func workingDaysCmd(a *app) *cobra.Command {
	var f calendarFlags
	cmd := &cobra.Command{
		Use:   "working-days",
		Short: "Approximate working days for a year and state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.calendar.WorkingDays(a.resolveYear(f.year), f.state)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), api.ToWorkingDaysDTO(summary))
		},
	}
	f.register(cmd)
	return cmd
}
