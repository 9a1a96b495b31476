// Package export renders leads as spreadsheets for the admin dashboard.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/admissions-api/internal/entity"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	leadsSheet      = "Leads"
)

var leadHeaders = []string{
	"Date", "Student", "Father", "Class", "City", "State", "Phone", "Email", "Status", "Message",
}

// WriteLeadsXLSX writes one header row plus one row per lead, in the given order.
func WriteLeadsXLSX(w io.Writer, leads []entity.Lead) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leadsSheet); err != nil {
		return err
	}

	for i, header := range leadHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(leadsSheet, cell, header); err != nil {
			return err
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(leadsSheet, 1, 1, style)
	}

	for i, l := range leads {
		row := []any{
			l.Date.UTC().Format("2006-01-02 15:04"),
			l.StudentName,
			l.FatherName,
			l.Class,
			l.City,
			l.State,
			l.Phone,
			l.Email,
			string(l.Status),
			l.Message,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(leadsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(leadsSheet, "A", "J", 18)
	return f.Write(w)
}
