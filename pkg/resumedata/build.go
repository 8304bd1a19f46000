package resumedata

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/resumedata-go/pkg/resumedata/models"
	"github.com/ukaji3/resumedata-go/pkg/resumedata/parser"
)

// TimestampLayout formats generated_at as ISO-8601 UTC with a "Z" suffix.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Build reads the workbook at path and returns its normalized payload.
func Build(path string, opts Options) (*models.Payload, error) {
	wb, err := LoadWorkbook(path, opts)
	if err != nil {
		return nil, err
	}
	return Assemble(wb, opts), nil
}

// Assemble runs each sheet parser over a loaded workbook.
func Assemble(wb *Workbook, opts Options) *models.Payload {
	payload := &models.Payload{
		TextBlocks:  parser.ParseTextBlocks(wb.sheet(SheetTextBlocks)),
		Entries:     parser.ParseEntries(wb.sheet(SheetEntries)),
		Skills:      parser.ParseSkills(wb.sheet(SheetSkills)),
		Languages:   parser.ParseLanguages(wb.sheet(SheetLanguages)),
		ContactInfo: parser.ParseContacts(wb.sheet(SheetContact)),
		GeneratedAt: opts.now().UTC().Format(TimestampLayout),
		Workbook:    wb.Name,
	}

	opts.logger().WithFields(logrus.Fields{
		"workbook":    wb.Name,
		"text_blocks": len(payload.TextBlocks),
		"entries":     len(payload.Entries),
		"skills":      len(payload.Skills),
		"languages":   len(payload.Languages),
		"contacts":    len(payload.ContactInfo),
	}).Info("assembled payload")

	return payload
}

// sheet returns the named sheet, or an empty one when it was not loaded.
func (wb *Workbook) sheet(name string) *models.RawSheet {
	if s, ok := wb.Sheets[name]; ok && s != nil {
		return s
	}
	return &models.RawSheet{Name: name}
}
