package workbook

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet holds one worksheet as rows of cell strings, mutated in place during
// processing.
type Sheet struct {
	Name string
	Rows [][]string
}

// Cell returns the value at the 0-based row/column, or "" when the position
// lies outside the stored data.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	cells := s.Rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// SetCell writes the value at the 0-based row/column, growing the row (and
// the sheet) as needed. Trailing cells introduced by growth stay empty.
func (s *Sheet) SetCell(row, col int, value string) {
	if row < 0 || col < 0 {
		return
	}
	for row >= len(s.Rows) {
		s.Rows = append(s.Rows, nil)
	}
	cells := s.Rows[row]
	for col >= len(cells) {
		cells = append(cells, "")
	}
	cells[col] = value
	s.Rows[row] = cells
}

// Workbook is an ordered collection of sheets from one XLSX file.
type Workbook struct {
	Sheets []*Sheet
}

// Sheet returns the named sheet, or nil when absent. Names match per
// EqualNames.
func (w *Workbook) Sheet(name string) *Sheet {
	for _, sheet := range w.Sheets {
		if EqualNames(sheet.Name, name) {
			return sheet
		}
	}
	return nil
}

// Load reads every sheet of the workbook at path into memory, preserving
// sheet order.
func Load(path string) (*Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer file.Close()

	wb := &Workbook{}
	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, &Sheet{Name: name, Rows: rows})
	}
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	return wb, nil
}

// Save serializes all sheets to an XLSX file at path, replacing any existing
// file.
func Save(wb *Workbook, path string) error {
	if wb == nil || len(wb.Sheets) == 0 {
		return errors.New("workbook has no sheets to save")
	}

	file := excelize.NewFile()
	defer file.Close()

	for i, sheet := range wb.Sheets {
		if i == 0 {
			// A new excelize file starts with one default sheet; rename it
			// instead of appending a second one.
			if err := file.SetSheetName(file.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("name sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := file.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}

		for r, cells := range sheet.Rows {
			if len(cells) == 0 {
				continue
			}
			start, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return fmt.Errorf("sheet %q row %d: %w", sheet.Name, r+1, err)
			}
			if err := file.SetSheetRow(sheet.Name, start, &cells); err != nil {
				return fmt.Errorf("write sheet %q row %d: %w", sheet.Name, r+1, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
