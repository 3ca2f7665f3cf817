package workbook

import "strings"

// Rules decides where identifiers live and where resolved names are written.
// Column numbers are 1-based, matching how the sheets are described in
// configuration; the returned indexes are 0-based.
type Rules struct {
	IdentifierColumn    int      // column holding identifiers on most sheets
	AltIdentifierColumn int      // column used instead on AltSheets
	AltSheets           []string // sheet names using the alternate column
	NameHeader          string   // header of the column receiving names
	HeaderRows          int      // rows at the top that carry headers, not data
}

// EqualNames reports whether two sheet names refer to the same sheet. Every
// configuration knob naming a sheet matches with the same rule: surrounding
// whitespace and letter case are ignored.
func EqualNames(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// IdentifierIndex returns the 0-based column index holding identifiers on the
// named sheet.
func (r Rules) IdentifierIndex(sheetName string) int {
	column := r.IdentifierColumn
	for _, name := range r.AltSheets {
		if EqualNames(name, sheetName) {
			column = r.AltIdentifierColumn
			break
		}
	}
	if column < 1 {
		column = 1
	}
	return column - 1
}

// NameIndex returns the 0-based column index resolved names are written to.
// An existing header cell equal to NameHeader is reused (the column is
// overwritten); otherwise a new column is appended after the widest row and
// its header written.
func (r Rules) NameIndex(sheet *Sheet) int {
	if r.HeaderRows > 0 && len(sheet.Rows) > 0 {
		for i, cell := range sheet.Rows[0] {
			if strings.TrimSpace(cell) == r.NameHeader {
				return i
			}
		}
	}

	widest := 0
	for _, cells := range sheet.Rows {
		if len(cells) > widest {
			widest = len(cells)
		}
	}
	if r.HeaderRows > 0 {
		sheet.SetCell(0, widest, r.NameHeader)
	}
	return widest
}

// DataStart returns the 0-based index of the first data row.
func (r Rules) DataStart() int {
	if r.HeaderRows < 0 {
		return 0
	}
	return r.HeaderRows
}
