// Package resumedatatest builds résumé workbooks for tests.
package resumedatatest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one sheet to write: the first row is the header row.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// WriteWorkbook saves sheets into a new workbook under t.TempDir and returns
// its path. Nil cells are left blank.
func WriteWorkbook(t testing.TB, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("add sheet %s: %v", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue(sheet.Name, cell, v); err != nil {
					t.Fatalf("set %s!%s: %v", sheet.Name, cell, err)
				}
			}
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// ResumeSheets returns a complete, small résumé workbook layout: a label
// row, the template's explanation row, then data rows.
func ResumeSheets() []Sheet {
	return []Sheet{
		{Name: "text_blocks", Rows: [][]interface{}{
			{"loc", "text"},
			{"id used for finding text block", "text shown"},
			{"intro", "  Software engineer from Zürich.  "},
			{"outro", "Thanks"},
		}},
		{Name: "entries", Rows: [][]interface{}{
			{"section", "Main title of the entry", "Location the entry occured",
				"Primary institution affiliation for entry", "Start date of entry (year)",
				`End year of entry. Set to "current" if entry is still ongoing.`,
				"description_1", "description_2", "in_resume"},
			{"Section of the CV", "Title", "Where", "Who", "Start", "End", "Bullet", "Bullet", "Include?"},
			{"industry_positions", "Engineer", "Berlin", "Acme", 2020, "current", "Built X", "Ran Y", true},
			{"education", "MSc", "Zurich", "ETH", 2019, 2017, "Thesis on Z", nil, false},
		}},
		{Name: "computer_science_skills", Rows: [][]interface{}{
			{"skill", "level"},
			{"Go", 5},
			{"SQL", "4.5"},
			{"Cobol", "n/a"},
		}},
		{Name: "languages", Rows: [][]interface{}{
			{"name of language", "level"},
			{"German", 5},
			{"French", 3.5},
		}},
		{Name: "contact_info", Rows: [][]interface{}{
			{"loc", "icon", "contact"},
			{"id of contact section", "icon", "contact"},
			{"email", "envelope", "someone@example.com"},
			{"phone", "phone", "+41 00 000 00 00"},
		}},
	}
}
