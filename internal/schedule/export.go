package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Schedule"

// WriteXLSX saves the schedule as a workbook with one sheet
func (s *Schedule) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sheetName, "A1", s.Title); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "A2", fmt.Sprintf("Steel grade %s (Fy %.0f MPa)", s.Grade.Name, s.Grade.Fy)); err != nil {
		return err
	}

	head := Header()
	if err := f.SetSheetRow(sheetName, "A4", &head); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(head), 4)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A4", last, bold); err != nil {
		return err
	}

	row := 5
	for _, e := range s.Entries {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []any{e.Mark, e.Role.String(), e.Designation(), e.Count, round(e.Length, 1), round(e.UnitMass, 2), round(e.Mass, 1)}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
		row++
	}

	totals := []any{"Total", "", "", s.TotalCount(), "", "", round(s.TotalMass(), 1)}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &totals); err != nil {
		return err
	}
	last, err = excelize.CoordinatesToCellName(len(head), row)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, cell, last, bold); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "A", "B", 10); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "G", 18); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// WritePDF saves the schedule as a one-page A4 report
func (s *Schedule) WritePDF(path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s - Member Schedule", s.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Steel grade: %s (Fy %.0f MPa, Fu %.0f MPa)", s.Grade.Name, s.Grade.Fy, s.Grade.Fu))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	widths := []float64{16, 20, 40, 14, 28, 34, 28}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(217, 225, 242)
	for i, h := range Header() {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range s.Entries {
		for i, v := range e.Row() {
			align := "R"
			if i < 3 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	totals := []string{"Total", "", "", fmt.Sprintf("%d", s.TotalCount()), "", "", fmt.Sprintf("%.1f", s.TotalMass())}
	for i, v := range totals {
		pdf.CellFormat(widths[i], 7, v, "1", 0, "R", true, 0, "")
	}
	pdf.Ln(-1)

	return pdf.OutputFileAndClose(path)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
