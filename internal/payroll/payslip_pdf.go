package payroll

import (
	"bytes"
	"fmt"
	"time"

	"go-hrm/internal/employee"

	"github.com/jung-kurt/gofpdf"
)

type pdfLine struct {
	label string
	key   string
}

var earningLines = []pdfLine{
	{"Monthly gross", "monthly_gross"},
	{"Pro-rata gross", "prorata_gross"},
	{"Basic", "basic"},
	{"HRA", "hra"},
	{"Overtime", "overtime_amount"},
}

var deductionLines = []pdfLine{
	{"Provident fund", "pf"},
	{"Professional tax", "professional_tax"},
	{"Insurance", "insurance"},
	{"ESI", "esi"},
}

func payslipFilename(empID string, year, month int) string {
	return fmt.Sprintf("%s-%d-%d.pdf", empID, year, month)
}

// renderPayslipPDF lays the stored breakdown out on a single A4 page.
func renderPayslipPDF(p Payslip, profile employee.Profile) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s %04d-%02d", profile.EmpID, p.Year, p.Month), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	period := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", profile.FullName(), profile.EmpID))
	pdf.Ln(6)
	if profile.Department != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Department: %s", profile.Department))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", period))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Working days: %d   Days present: %d", p.WorkingDays, p.DaysPresent))
	pdf.Ln(10)

	section := func(title string, lines []pdfLine) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.CellFormat(90, 7, l.label, "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, detailString(p, l.key), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}
	section("Earnings", earningLines)
	section("Deductions", deductionLines)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 8, "Net pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, money(p.NetAmount), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func detailString(p Payslip, key string) string {
	if v, ok := p.Details[key]; ok {
		return fmt.Sprint(v)
	}
	return "-"
}
