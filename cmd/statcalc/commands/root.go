package commands

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/warp/statutory-engine/api"
	"github.com/warp/statutory-engine/holiday"
	"github.com/warp/statutory-engine/report"
	"github.com/warp/statutory-engine/statutory"
	"github.com/warp/statutory-engine/tables"
)

// app is the dependency graph shared by subcommands. It is built in the
// root's PersistentPreRunE once --tables is known.
type app struct {
	tablesFile string

	calc     *statutory.Calculator
	calendar *holiday.Calendar
	reports  *report.Assembler
}

func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "statcalc",
		Short:        "Statutory payroll calculations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			tb := tables.Default()
			if a.tablesFile != "" {
				loaded, err := tables.LoadFile(a.tablesFile)
				if err != nil {
					return err
				}
				tb = loaded
			}
			a.calc = statutory.New(tb)
			a.calendar = holiday.New(tb)
			a.reports = report.NewAssembler()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.tablesFile, "tables", "", "YAML rate tables overriding the built-in ones")

	root.AddCommand(
		calcCmd(a, statutory.CalcGratuity, "Gratuity payable on leaving service", salaryFlag, yearsFlag, sectorFlag),
		calcCmd(a, statutory.CalcPF, "Provident fund contribution (EPF, or GPF for government)", basicFlag, daFlag, sectorFlag),
		calcCmd(a, statutory.CalcGPF, "General provident fund subscription range", basicFlag, daFlag),
		calcCmd(a, statutory.CalcNPS, "National pension scheme contribution", basicFlag, daFlag, employeeRateFlag, employerRateFlag),
		calcCmd(a, statutory.CalcESI, "Employee state insurance contribution", salaryFlag, stateFlag),
		calcCmd(a, statutory.CalcLeave, "Annual leave entitlement", daysWorkedFlag, stateFlag, establishmentFlag, sectorFlag),
		checklistCmd(a),
		holidaysCmd(a),
		workingDaysCmd(a),
		reportCmd(a),
	)
	return root
}

// =============================================================================
// CALCULATION FLAGS
// =============================================================================

type calcFlag struct {
	name  string // hyphenated; the request field uses underscores
	usage string
}

var (
	salaryFlag        = calcFlag{"salary", "monthly salary (gratuity: last drawn basic + DA)"}
	yearsFlag         = calcFlag{"years", "completed years of service"}
	sectorFlag        = calcFlag{"sector", "private or government (default private)"}
	basicFlag         = calcFlag{"basic", "monthly basic pay"}
	daFlag            = calcFlag{"da", "monthly dearness allowance (default 0)"}
	employeeRateFlag  = calcFlag{"employee-rate", "employee contribution percent"}
	employerRateFlag  = calcFlag{"employer-rate", "employer contribution percent"}
	stateFlag         = calcFlag{"state", "state name (default general)"}
	daysWorkedFlag    = calcFlag{"days-worked", "days worked in the year"}
	establishmentFlag = calcFlag{"establishment-type", "factory, shop or other (default factory)"}
	numEmployeesFlag  = calcFlag{"num-employees", "number of employees"}
	industryFlag      = calcFlag{"industry-type", "industry, e.g. factory or software"}

	allCalcFlags = []calcFlag{
		salaryFlag, yearsFlag, sectorFlag, basicFlag, daFlag, employeeRateFlag,
		employerRateFlag, stateFlag, daysWorkedFlag, establishmentFlag,
		numEmployeesFlag, industryFlag,
	}
)

func addFlags(cmd *cobra.Command, flags ...calcFlag) {
	for _, f := range flags {
		cmd.Flags().String(f.name, "", f.usage)
	}
}

// changedValues collects the flags set on the command line, keyed by the
// request field name.
func changedValues(fs *pflag.FlagSet) url.Values {
	v := url.Values{}
	fs.Visit(func(f *pflag.Flag) {
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})
	return v
}

func (a *app) evaluate(cmd *cobra.Command, ct statutory.CalcType) (api.Outcome, error) {
	req, err := api.RequestFromValues(string(ct), changedValues(cmd.Flags()))
	if err != nil {
		return api.Outcome{}, err
	}
	return api.Evaluate(a.calc, req)
}

// =============================================================================
// COMMANDS
// =============================================================================

func calcCmd(a *app, ct statutory.CalcType, short string, flags ...calcFlag) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(ct),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.evaluate(cmd, ct)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out.DTO())
		},
	}
	addFlags(cmd, flags...)
	return cmd
}

func checklistCmd(a *app) *cobra.Command {
	cmd := calcCmd(a, statutory.CalcCompliance, "Compliance checklist for an establishment",
		stateFlag, numEmployeesFlag, industryFlag)
	cmd.Use = "checklist"
	cmd.Aliases = []string{string(statutory.CalcCompliance)}
	return cmd
}

const reportExample = `  statcalc report gratuity --salary 50000 --years 6
  statcalc report compliance --state Maharashtra --num-employees 25 --industry-type factory -o checklist.pdf`

func reportCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:     "report TYPE",
		Short:   "Write a calculation as a PDF report",
		Example: reportExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := statutory.ParseCalcType(args[0])
			if err != nil {
				return err
			}
			out, err := a.evaluate(cmd, ct)
			if err != nil {
				return err
			}
			path := outPath
			if path == "" {
				path = report.Filename(out.Type)
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := out.RenderPDF(a.reports, f); err != nil {
				f.Close()
				os.Remove(path)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	addFlags(cmd, allCalcFlags...)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <type>_report.pdf)")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
