package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/resumedata-go/pkg/resumedata/models"
)

var entryLabels = []string{
	"section",
	"Main title of the entry",
	"Location the entry occured",
	"Primary institution affiliation for entry",
	"Start date of entry (year)",
	`End year of entry. Set to "current" if entry is still ongoing.`,
}

var entryExplanation = models.Row{"Which section the entry belongs to", "Title", "Where", "Who", "Start", "End"}

func entrySheet(extra []string, rows ...models.Row) *models.RawSheet {
	labels := append(append([]string{}, entryLabels...), extra...)
	return newSheet("entries", labels, rows...)
}

func TestParseEntries(t *testing.T) {
	sheet := entrySheet([]string{"description_1", "description_2"},
		entryExplanation,
		models.Row{" Acme ", "Engineer", "Berlin", "Acme GmbH", int64(2018), int64(2020), "Did X", "True"},
		models.Row{"education", "MSc", "Zurich", "ETH", int64(2019), int64(2017), nil, "  Thesis  "},
	)

	entries := ParseEntries(sheet)
	require.Len(t, entries, 2)

	assert.Equal(t, models.Entry{
		Section:  "Acme",
		Title:    "Engineer",
		Location: "Berlin",
		Org:      "Acme GmbH",
		Span:     "2018 – 2020",
		Bullets:  []string{"Did X"},
	}, entries[0])
	assert.Equal(t, "2017 – 2019", entries[1].Span)
	assert.Equal(t, []string{"Thesis"}, entries[1].Bullets)
}

func TestParseEntriesSkipsHeaderRows(t *testing.T) {
	sheet := entrySheet(nil,
		entryExplanation,
		models.Row{"projects", "A"},
		models.Row{"Which section the entry belongs to", "repeated explanation"},
		models.Row{"SECTION", "repeated label"},
		models.Row{"  ", "no section"},
		nil,
		models.Row{"projects", "B"},
	)

	entries := ParseEntries(sheet)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Title)
	assert.Equal(t, "B", entries[1].Title)
}

func TestParseEntriesColumnLabelAsHeader(t *testing.T) {
	labels := append([]string{"category"}, entryLabels[1:]...)
	sheet := newSheet("entries", labels,
		entryExplanation,
		models.Row{"Category", "stray label row"},
		models.Row{"talks", "PyCon"},
	)

	entries := ParseEntries(sheet)
	require.Len(t, entries, 1)
	assert.Equal(t, "PyCon", entries[0].Title)
}

func TestParseEntriesDescriptionColumns(t *testing.T) {
	// columns 6+ are descriptions whatever their label; control columns are not
	sheet := entrySheet([]string{"Unnamed: 6", "filter_cv", "Unnamed: 8", "in_resume", "Description extra"},
		entryExplanation,
		models.Row{"jobs", "T", "L", "O", nil, nil, "first", "second?", "third", true, "fourth"},
		models.Row{"jobs", "T", "L", "O", nil, nil, false, nil, "FALSE", nil, ""},
	)

	entries := ParseEntries(sheet)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"first", "third", "fourth"}, entries[0].Bullets)
	assert.Equal(t, []string{}, entries[1].Bullets)
	assert.Equal(t, "", entries[1].Span)
}

func TestParseEntriesLabelledDescriptionInFixedBlock(t *testing.T) {
	labels := []string{"section", "title", "Short description", "org", "start", "end"}
	sheet := newSheet("entries", labels,
		models.Row{"explanation"},
		models.Row{"jobs", "Dev", "Led the team", "Org", "2019", "current"},
	)

	entries := ParseEntries(sheet)
	require.Len(t, entries, 1)
	// fixed columns fall back to their positions when labels differ
	assert.Equal(t, "Dev", entries[0].Title)
	assert.Equal(t, "Led the team", entries[0].Location)
	assert.Equal(t, "2019 – current", entries[0].Span)
	assert.Equal(t, []string{"Led the team"}, entries[0].Bullets)
}

func TestParseEntriesLooksUpFixedColumnsByLabel(t *testing.T) {
	labels := []string{
		"section",
		"Start date of entry (year)",
		"Main title of the entry",
		`End year of entry. Set to "current" if entry is still ongoing.`,
		"Primary institution affiliation for entry",
		"Location the entry occured",
	}
	sheet := newSheet("entries", labels,
		models.Row{"explanation"},
		models.Row{"jobs", int64(2001), "Dev", int64(2003), "Org", "Paris"},
	)

	entries := ParseEntries(sheet)
	require.Len(t, entries, 1)
	assert.Equal(t, models.Entry{
		Section:  "jobs",
		Title:    "Dev",
		Location: "Paris",
		Org:      "Org",
		Span:     "2001 – 2003",
		Bullets:  []string{},
	}, entries[0])
}

func TestParseEntriesEmpty(t *testing.T) {
	entries := ParseEntries(entrySheet(nil))
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestIsDescriptionColumn(t *testing.T) {
	tests := []struct {
		col      models.Column
		expected bool
	}{
		{models.Column{Label: "section", Index: 0}, false},
		{models.Column{Label: "End year", Index: 5}, false},
		{models.Column{Label: "Job DESCRIPTION", Index: 2}, true},
		{models.Column{Label: "Unnamed: 6", Index: 6}, true},
		{models.Column{Label: "in_resume", Index: 9}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsDescriptionColumn(tt.col), "column %+v", tt.col)
	}
}
