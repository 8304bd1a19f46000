package models

import "strings"

// RawSheet represents one named sheet as labeled columns and data rows.
// The first sheet row provides the labels and is not part of Rows.
type RawSheet struct {
	// Name is the sheet name inside the workbook.
	Name string `json:"name"`
	// Columns lists the columns in sheet order.
	Columns []Column `json:"columns"`
	// Rows contains the data rows in sheet order.
	Rows []Row `json:"rows,omitempty"`
	// Range is the used cell range, header included (e.g., "A1:H14").
	Range string `json:"range,omitempty"`
	// CellCount is the number of non-empty cells inside Range.
	CellCount int `json:"cell_count"`
}

// Label returns the label of column i, or "" when out of range.
func (s *RawSheet) Label(i int) string {
	if i < 0 || i >= len(s.Columns) {
		return ""
	}
	return s.Columns[i].Label
}

// ColumnIndex finds a column by label, ignoring case and surrounding space.
// It returns -1 when no column matches.
func (s *RawSheet) ColumnIndex(label string) int {
	want := strings.ToLower(strings.TrimSpace(label))
	for _, col := range s.Columns {
		if strings.ToLower(strings.TrimSpace(col.Label)) == want {
			return col.Index
		}
	}
	return -1
}
