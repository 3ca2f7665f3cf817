package workbook_test

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"egrulfill/internal/workbook"
)

func writeFixture(t *testing.T, sheets map[string][][]any) string {
	t.Helper()
	file := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			if err := file.SetSheetName(file.GetSheetName(0), name); err != nil {
				t.Fatalf("rename default sheet: %v", err)
			}
			first = false
		} else if _, err := file.NewSheet(name); err != nil {
			t.Fatalf("create sheet %q: %v", name, err)
		}
		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("coordinates: %v", err)
			}
			if err := file.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("write row: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}
	return path
}

func TestLoadReadsAllSheets(t *testing.T) {
	path := writeFixture(t, map[string][][]any{
		"Свод": {
			{"Организация", "ИНН"},
			{"ООО Ромашка", "7707083893"},
		},
	})

	wb, err := workbook.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(wb.Sheets) != 1 {
		t.Fatalf("expected 1 sheet, got %d", len(wb.Sheets))
	}
	sheet := wb.Sheet("Свод")
	if sheet == nil {
		t.Fatal("sheet not found by name")
	}
	if got := sheet.Cell(1, 1); got != "7707083893" {
		t.Fatalf("unexpected cell value: %q", got)
	}
	if got := sheet.Cell(5, 9); got != "" {
		t.Fatalf("out-of-range cell must be empty, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := workbook.Load(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	wb := &workbook.Workbook{Sheets: []*workbook.Sheet{
		{Name: "Первый", Rows: [][]string{{"h1", "h2"}, {"a", "b"}}},
		{Name: "Второй", Rows: [][]string{{"x"}}},
	}}
	wb.Sheets[0].SetCell(1, 2, "Иванов Иван Иванович")

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := workbook.Save(wb, path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := workbook.Load(path)
	if err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if len(loaded.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(loaded.Sheets))
	}
	if loaded.Sheets[0].Name != "Первый" || loaded.Sheets[1].Name != "Второй" {
		t.Fatalf("sheet order not preserved: %q, %q", loaded.Sheets[0].Name, loaded.Sheets[1].Name)
	}
	if got := loaded.Sheets[0].Cell(1, 2); got != "Иванов Иван Иванович" {
		t.Fatalf("unexpected saved value: %q", got)
	}
}

func TestSetCellGrowsRow(t *testing.T) {
	sheet := &workbook.Sheet{Name: "s"}
	sheet.SetCell(2, 3, "v")
	if len(sheet.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(sheet.Rows))
	}
	if got := sheet.Cell(2, 3); got != "v" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := sheet.Cell(2, 1); got != "" {
		t.Fatalf("growth must leave gaps empty, got %q", got)
	}
}

func TestSheetLookup(t *testing.T) {
	wb := &workbook.Workbook{Sheets: []*workbook.Sheet{
		{Name: "Свод"},
		{Name: "Текущий"},
	}}

	if got := wb.Sheet("Текущий"); got != wb.Sheets[1] {
		t.Fatalf("exact name lookup failed: %v", got)
	}
	if got := wb.Sheet(" ТЕКУЩИЙ "); got != wb.Sheets[1] {
		t.Fatalf("lookup must ignore case and spacing: %v", got)
	}
	if got := wb.Sheet("Нет такого"); got != nil {
		t.Fatalf("missing sheet must return nil, got %v", got)
	}
}

func TestRulesIdentifierIndex(t *testing.T) {
	rules := workbook.Rules{
		IdentifierColumn:    5,
		AltIdentifierColumn: 3,
		AltSheets:           []string{"ИП", "Филиалы"},
	}

	if got := rules.IdentifierIndex("Свод"); got != 4 {
		t.Fatalf("default sheet: got %d, want 4", got)
	}
	if got := rules.IdentifierIndex("ИП"); got != 2 {
		t.Fatalf("allowlisted sheet: got %d, want 2", got)
	}
	if got := rules.IdentifierIndex(" филиалы "); got != 2 {
		t.Fatalf("allowlist match must ignore case and spacing: got %d", got)
	}
}

func TestRulesNameIndexReusesHeader(t *testing.T) {
	rules := workbook.Rules{NameHeader: "ФИО", HeaderRows: 1}
	sheet := &workbook.Sheet{Name: "s", Rows: [][]string{
		{"Организация", "ФИО", "ИНН"},
		{"ООО Ромашка", "старое", "7707083893"},
	}}

	if got := rules.NameIndex(sheet); got != 1 {
		t.Fatalf("expected existing column reused, got %d", got)
	}
}

func TestRulesNameIndexAppendsColumn(t *testing.T) {
	rules := workbook.Rules{NameHeader: "ФИО", HeaderRows: 1}
	sheet := &workbook.Sheet{Name: "s", Rows: [][]string{
		{"Организация", "ИНН"},
		{"ООО Ромашка", "7707083893", "лишняя"},
	}}

	got := rules.NameIndex(sheet)
	if got != 3 {
		t.Fatalf("expected column appended after widest row, got %d", got)
	}
	if header := sheet.Cell(0, 3); header != "ФИО" {
		t.Fatalf("expected header written, got %q", header)
	}
}
