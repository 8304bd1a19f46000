// Package parser turns résumé workbook sheets into records.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/resumedata-go/pkg/resumedata/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a whole sheet into a RawSheet.
// The first row supplies column labels; fully blank rows are dropped.
func ReadSheet(f *excelize.File, sheetName string) (*models.RawSheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &models.RawSheet{Name: sheetName}
	if len(rows) == 0 {
		return sheet, nil
	}
	sheet.Range, sheet.CellCount = UsedRange(rows)

	_, _, _, maxCol := findDataBounds(rows)
	width := maxCol + 1
	if width < len(rows[0]) {
		width = len(rows[0])
	}
	sheet.Columns = labelColumns(rows[0], width)

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := make(models.Row, width)
		hasData := false

		for colIdx, raw := range rows[rowIdx] {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			row[colIdx] = typedValue(cellType, raw)
			if row[colIdx] != nil {
				hasData = true
			}
		}

		if hasData {
			sheet.Rows = append(sheet.Rows, row)
		}
	}

	return sheet, nil
}

// labelColumns names every column from the header row.
// Blank labels become "Unnamed: <index>" and repeated labels get a ".N" suffix.
func labelColumns(header []string, width int) []models.Column {
	columns := make([]models.Column, width)
	seen := make(map[string]int)

	for i := 0; i < width; i++ {
		label := ""
		if i < len(header) {
			label = strings.TrimSpace(header[i])
		}
		if label == "" {
			label = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[label]; dup {
			seen[label] = n + 1
			label = fmt.Sprintf("%s.%d", label, n+1)
		} else {
			seen[label] = 0
		}
		columns[i] = models.Column{Label: label, Index: i}
	}

	return columns
}

// typedValue converts a raw cell string into a typed cell value.
func typedValue(cellType excelize.CellType, raw string) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeError:
		return nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(raw)
	default:
		return raw
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
