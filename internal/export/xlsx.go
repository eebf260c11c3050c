package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Report"

// WriteXLSX writes s as a single-sheet workbook. Amounts stay text so the
// formatted values are preserved exactly.
func WriteXLSX(w io.Writer, s Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	row := 1
	setRow := func(values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
			return err
		}
		row++
		return nil
	}

	if err := setRow([]string{s.Title}); err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "A1", title); err != nil {
		return err
	}
	if err := setRow([]string{s.generatedLine()}); err != nil {
		return err
	}
	for _, line := range s.Info {
		if err := setRow([]string{line}); err != nil {
			return err
		}
	}
	row++

	headerRow := row
	if err := setRow(s.Headers); err != nil {
		return err
	}
	if len(s.Headers) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, headerRow)
		last, _ := excelize.CoordinatesToCellName(len(s.Headers), headerRow)
		if err := f.SetCellStyle(xlsxSheet, first, last, bold); err != nil {
			return err
		}
		lastCol, _ := excelize.ColumnNumberToName(len(s.Headers))
		if err := f.SetColWidth(xlsxSheet, "A", lastCol, 20); err != nil {
			return err
		}
	}
	for _, r := range s.Rows {
		if err := setRow(r); err != nil {
			return err
		}
	}

	return f.Write(w)
}
