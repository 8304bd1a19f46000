package parser

import "github.com/ukaji3/resumedata-go/pkg/resumedata/models"

func newSheet(name string, labels []string, rows ...models.Row) *models.RawSheet {
	sheet := &models.RawSheet{Name: name, Rows: rows}
	for i, label := range labels {
		sheet.Columns = append(sheet.Columns, models.Column{Label: label, Index: i})
	}
	return sheet
}
