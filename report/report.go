/*
Package report renders calculation results as PDF documents.

PURPOSE:
  The calculators return structured results; this package lays them out
  for people. It knows nothing about how results are computed and the
  calculators know nothing about layout.

DOCUMENTS:
  Calculation: header table, input parameters, result table, disclaimer.
               One layout per calculation type (gratuity, pf, gpf, nps,
               esi, leave).
  Compliance:  header table and a numbered checklist with a status column.

TIME:
  The "Generated On" stamp comes from Assembler.Clock. This is the only
  place in the system that reads the clock.

USAGE:
  a := report.NewAssembler()
  err := a.Calculation(w, report.Request{
      Type:   statutory.CalcGratuity,
      Inputs: []report.Field{{"Last Drawn Salary", "50,000.00"}},
      Result: res,
  })
*/
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/warp/statutory-engine/compliance"
	"github.com/warp/statutory-engine/statutory"
)

const (
	systemName  = "Statutory Payroll Compliance System"
	stampLayout = "02 January 2006 at 03:04 PM"

	calcDisclaimer       = "This report is generated for informational purposes. Please consult legal experts for complete compliance."
	complianceDisclaimer = "This checklist is based on general compliance requirements. Specific requirements may vary. Please consult with legal experts for complete compliance guidance."
)

// Field is one labelled input parameter.
type Field struct {
	Label string
	Value string
}

// Request describes one calculation report.
type Request struct {
	Type   statutory.CalcType
	Inputs []Field
	Result any
}

// Assembler builds PDF reports.
type Assembler struct {
	Clock    func() time.Time
	NewID    func() string
	Compress bool
}

// NewAssembler returns an assembler using the wall clock and random UUIDs.
func NewAssembler() *Assembler {
	return &Assembler{Clock: time.Now, NewID: uuid.NewString, Compress: true}
}

// Filename returns the attachment name for a calculation type.
func Filename(ct statutory.CalcType) string {
	return fmt.Sprintf("%s_report.pdf", ct)
}

// Calculation writes a calculation report to w.
func (a *Assembler) Calculation(w io.Writer, req Request) error {
	body, title, err := calculationBody(req)
	if err != nil {
		return err
	}

	doc := a.newDocument("Labor Law Compliance Report")
	doc.infoTable([]Field{
		{"Report Type:", title},
		{"Generated On:", a.Clock().Format(stampLayout)},
		{"Reference:", a.NewID()},
		{"System:", systemName},
	})
	doc.heading(title + " Report")
	doc.table([]string{"Parameter", "Value"}, []float64{95, 75}, fieldRows(req.Inputs), headerDark)
	doc.space(8)
	body(doc)
	doc.footer(calcDisclaimer)
	return doc.output(w)
}

// Compliance writes a compliance checklist report to w.
func (a *Assembler) Compliance(w io.Writer, cl compliance.Checklist) error {
	doc := a.newDocument("Compliance Checklist Report")
	doc.infoTable([]Field{
		{"State:", cl.State},
		{"Number of Employees:", fmt.Sprint(cl.EmployeeCount)},
		{"Industry Type:", cl.Industry},
		{"Generated On:", a.Clock().Format(stampLayout)},
		{"Total Requirements:", fmt.Sprint(cl.Len())},
		{"Reference:", a.NewID()},
	})
	doc.heading("Compliance Requirements Checklist")

	rows := make([][]string, cl.Len())
	for i, item := range cl.Items {
		rows[i] = []string{fmt.Sprint(i + 1), item.Text, "Pending"}
	}
	doc.table([]string{"S.No.", "Compliance Requirement", "Status"}, []float64{15, 145, 30}, rows, headerDark)
	doc.footer(complianceDisclaimer)
	return doc.output(w)
}

// calculationBody picks the result layout for req.Type and checks that the
// result value has the matching shape.
func calculationBody(req Request) (func(*document), string, error) {
	mismatch := func() error {
		return fmt.Errorf("report: %T is not a %s result", req.Result, req.Type)
	}

	switch req.Type {
	case statutory.CalcGratuity:
		r, ok := req.Result.(statutory.GratuityResult)
		if !ok {
			return nil, "", mismatch()
		}
		return func(d *document) { gratuityBody(d, r) }, "Gratuity Calculation", nil

	case statutory.CalcPF, statutory.CalcGPF, statutory.CalcNPS:
		r, ok := req.Result.(statutory.ContributionResult)
		if !ok || !schemeMatches(req.Type, r.Scheme) {
			return nil, "", mismatch()
		}
		return func(d *document) { contributionBody(d, r) }, contributionTitle(r.Scheme), nil

	case statutory.CalcESI:
		r, ok := req.Result.(statutory.InsuranceResult)
		if !ok {
			return nil, "", mismatch()
		}
		return func(d *document) { insuranceBody(d, r) }, "ESI Calculation", nil

	case statutory.CalcLeave:
		r, ok := req.Result.(statutory.LeaveResult)
		if !ok {
			return nil, "", mismatch()
		}
		return func(d *document) { leaveBody(d, r) }, "Leave Entitlement", nil

	case statutory.CalcCompliance:
		return nil, "", fmt.Errorf("report: use Compliance for %s: %w", req.Type, statutory.ErrUnsupportedVariant)
	}
	return nil, "", &statutory.VariantError{Kind: "calculation type", Value: string(req.Type)}
}

func schemeMatches(ct statutory.CalcType, s statutory.Scheme) bool {
	switch ct {
	case statutory.CalcPF:
		// pf covers both sectors; government pf is GPF.
		return s == statutory.SchemeEPF || s == statutory.SchemeGPF
	case statutory.CalcGPF:
		return s == statutory.SchemeGPF
	case statutory.CalcNPS:
		return s == statutory.SchemeNPS
	}
	return false
}

func contributionTitle(s statutory.Scheme) string {
	switch s {
	case statutory.SchemeGPF:
		return "General Provident Fund Calculation"
	case statutory.SchemeNPS:
		return "National Pension Scheme Calculation"
	default:
		return "Provident Fund Calculation"
	}
}

func fieldRows(fields []Field) [][]string {
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f.Label, f.Value}
	}
	return rows
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// =============================================================================
// DOCUMENT - thin wrapper over fpdf with the house style
// =============================================================================

type headerStyle int

const (
	headerDark headerStyle = iota
	headerLight
)

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (a *Assembler) newDocument(title string) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(a.Compress)
	pdf.SetTitle(title, true)
	pdf.SetCreator(systemName, true)
	pdf.SetCreationDate(a.Clock())
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, d.tr(title), "", 1, "C", false, 0, "")
	d.space(6)
	return d
}

func (d *document) space(h float64) { d.pdf.Ln(h) }

func (d *document) heading(text string) {
	d.space(4)
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.CellFormat(0, 9, d.tr(text), "", 1, "L", false, 0, "")
	d.space(2)
}

func (d *document) infoTable(fields []Field) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetDrawColor(211, 211, 211)
	for _, f := range fields {
		d.pdf.CellFormat(50, 7, d.tr(f.Label), "1", 0, "L", false, 0, "")
		d.pdf.CellFormat(100, 7, d.tr(f.Value), "1", 1, "L", false, 0, "")
	}
	d.pdf.SetDrawColor(0, 0, 0)
	d.space(6)
}

func (d *document) table(header []string, widths []float64, rows [][]string, style headerStyle) {
	switch style {
	case headerDark:
		d.pdf.SetFillColor(128, 128, 128)
		d.pdf.SetTextColor(245, 245, 245)
	case headerLight:
		d.pdf.SetFillColor(173, 216, 230)
		d.pdf.SetTextColor(0, 0, 0)
	}
	d.pdf.SetFont("Helvetica", "B", 11)
	for i, h := range header {
		d.pdf.CellFormat(widths[i], 8, d.tr(h), "1", 0, "L", true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			d.pdf.CellFormat(widths[i], 7, d.tr(cell), "1", 0, "L", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func (d *document) footer(disclaimer string) {
	d.space(12)
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.MultiCell(0, 5, d.tr(disclaimer), "", "L", false)
	d.space(3)
	d.pdf.MultiCell(0, 5, d.tr(systemName), "", "L", false)
}

func (d *document) output(w io.Writer) error {
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}
	return d.pdf.Output(w)
}
