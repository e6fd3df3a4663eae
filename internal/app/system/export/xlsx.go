package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// XLSXExporter writes each report section to its own worksheet.
type XLSXExporter struct{}

// NewXLSXExporter constructs an XLSX exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Render builds the workbook and returns its bytes.
func (e *XLSXExporter) Render(rep Report) ([]byte, error) {
	if err := rep.validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, sec := range rep.Sections {
		name := SheetName(sec.Title, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}

		if err := writeRow(f, name, 1, sec.Headers); err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(sec.Headers), 1)
		if err != nil {
			return nil, fmt.Errorf("header range: %w", err)
		}
		if err := f.SetCellStyle(name, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
		for r, row := range sec.Rows {
			if err := writeRow(f, name, r+2, row); err != nil {
				return nil, err
			}
		}
		if err := f.SetColWidth(name, "A", "A", 32); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d on %q: %w", row, sheet, err)
	}
	return nil
}

// SheetName turns a section title into a valid, unique-enough worksheet name.
func SheetName(title string, index int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = fmt.Sprintf("Tabelle %d", index+1)
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}
