// Package models defines data structures for résumé workbook extraction.
package models

// Column identifies one sheet column by its header label and 0-based position.
type Column struct {
	// Label is the header text of the column, auto-named when blank.
	Label string `json:"label"`
	// Index is the 0-based column position.
	Index int `json:"index"`
}

// Row holds one data row, aligned with the owning sheet's Columns.
// Values are nil (missing), string, int64, float64 or bool.
type Row []interface{}

// Value returns the cell at column index i, or nil when the row is shorter.
func (r Row) Value(i int) interface{} {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}
