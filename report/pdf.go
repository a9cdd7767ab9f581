// Package report renders printable salary documents.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/salary"
	"github.com/warp/takehome-engine/tax"
)

// Core PDF fonts have no rupee glyph.
const currencyPrefix = "Rs. "

// SalaryBreakdownPDF renders b as a one-page A4 document.
func SalaryBreakdownPDF(b salary.Breakdown) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary Breakdown", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Breakdown")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("FY %s, %s regime. Basic + DA: %s%% of gross.",
		tax.FiscalYear, tax.RegimeName, b.BasicDAPercent.String()))
	pdf.Ln(10)

	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Annual Gross", b.AnnualGross},
		{"Standard Deduction", b.StandardDeduction},
		{"Taxable Income", b.TaxableIncome},
		{"Income Tax", b.Tax},
		{"Post-Tax Annual", b.PostTaxAnnual},
		{"EPF (Monthly)", b.EPFMonthly},
		{"Take-Home (Monthly)", b.TakeHomeMonthly},
	}

	pdf.SetFont("Helvetica", "", 12)
	for i, row := range rows {
		if i == len(rows)-1 {
			pdf.SetFont("Helvetica", "B", 12)
		}
		pdf.CellFormat(80, 8, row.label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, currencyPrefix+generic.GroupIndian(row.amount, 2), "B", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render breakdown: %w", err)
	}
	return buf.Bytes(), nil
}
