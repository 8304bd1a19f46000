package parser

import (
	"strings"

	"github.com/ukaji3/resumedata-go/pkg/resumedata/models"
)

// FixedEntryColumns is the number of leading entry columns that are not
// descriptions.
const FixedEntryColumns = 6

// entryColumn is a fixed entry column, looked up by label first and by
// position when the label is absent.
type entryColumn struct {
	label    string
	position int
}

var (
	entryTitle    = entryColumn{"Main title of the entry", 1}
	entryLocation = entryColumn{"Location the entry occured", 2}
	entryOrg      = entryColumn{"Primary institution affiliation for entry", 3}
	entryStart    = entryColumn{"Start date of entry (year)", 4}
	entryEnd      = entryColumn{`End year of entry. Set to "current" if entry is still ongoing.`, 5}
)

func (c entryColumn) index(sheet *models.RawSheet) int {
	if idx := sheet.ColumnIndex(c.label); idx >= 0 {
		return idx
	}
	return c.position
}

// Label fragments of columns that flag inclusion rather than hold content.
var controlColumnMarkers = []string{"filter", "resume", "in_resume"}

// IsDescriptionColumn reports whether a column holds bullet text: its label
// mentions "description" or it sits after the fixed entry columns.
func IsDescriptionColumn(col models.Column) bool {
	return strings.Contains(strings.ToLower(col.Label), "description") || col.Index >= FixedEntryColumns
}

func isControlColumn(col models.Column) bool {
	label := strings.ToLower(col.Label)
	for _, marker := range controlColumnMarkers {
		if strings.Contains(label, marker) {
			return true
		}
	}
	return false
}

// bulletColumns returns the indexes of description columns that carry
// content, in sheet order.
func bulletColumns(sheet *models.RawSheet) []int {
	var indices []int
	for _, col := range sheet.Columns {
		if IsDescriptionColumn(col) && !isControlColumn(col) {
			indices = append(indices, col.Index)
		}
	}
	return indices
}

// ParseEntries reads the entries sheet into one Entry per data row.
//
// The first data row holds the per-column explanations of the workbook
// template; its section value is treated as a header wherever it reappears,
// as are the section column label and the literal "section".
func ParseEntries(sheet *models.RawSheet) []models.Entry {
	entries := make([]models.Entry, 0, len(sheet.Rows))
	if len(sheet.Rows) == 0 {
		return entries
	}

	headers := append(sentinels{
		CleanValue(sheet.Rows[0].Value(0)),
		sheet.Label(0),
	}, entrySentinels...)

	titleIdx := entryTitle.index(sheet)
	locationIdx := entryLocation.index(sheet)
	orgIdx := entryOrg.index(sheet)
	startIdx := entryStart.index(sheet)
	endIdx := entryEnd.index(sheet)
	descIdx := bulletColumns(sheet)

	for _, row := range sheet.Rows {
		section := CleanValue(row.Value(0))
		if headers.match(section) {
			continue
		}

		entries = append(entries, models.Entry{
			Section:  section,
			Title:    CleanValue(row.Value(titleIdx)),
			Location: CleanValue(row.Value(locationIdx)),
			Org:      CleanValue(row.Value(orgIdx)),
			Span:     FormatSpan(row.Value(startIdx), row.Value(endIdx)),
			Bullets:  collectBullets(row, descIdx),
		})
	}

	return entries
}

func collectBullets(row models.Row, descIdx []int) []string {
	bullets := make([]string, 0, len(descIdx))
	for _, idx := range descIdx {
		val := CleanValue(row.Value(idx))
		if val == "" {
			continue
		}
		// boolean flags leaking from unlabeled filter columns
		if lower := strings.ToLower(val); lower == "true" || lower == "false" {
			continue
		}
		bullets = append(bullets, val)
	}
	return bullets
}
