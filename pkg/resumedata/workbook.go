package resumedata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/resumedata-go/pkg/resumedata/models"
	"github.com/ukaji3/resumedata-go/pkg/resumedata/parser"
	"github.com/xuri/excelize/v2"
)

// Required sheet names.
const (
	SheetTextBlocks = "text_blocks"
	SheetEntries    = "entries"
	SheetSkills     = "computer_science_skills"
	SheetLanguages  = "languages"
	SheetContact    = "contact_info"
)

// RequiredSheets lists the sheets every résumé workbook must contain.
var RequiredSheets = []string{
	SheetTextBlocks,
	SheetEntries,
	SheetSkills,
	SheetLanguages,
	SheetContact,
}

// Workbook holds the required sheets of one résumé workbook.
type Workbook struct {
	// Name is the workbook file name (no path).
	Name string
	// Sheets maps each required sheet name to its contents.
	Sheets map[string]*models.RawSheet
}

// LoadWorkbook opens the workbook at path and reads every required sheet.
func LoadWorkbook(path string, opts Options) (*Workbook, error) {
	lgr := opts.logger().WithField("workbook", path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	if err := checkSheets(f.GetSheetList()); err != nil {
		return nil, err
	}

	wb := &Workbook{
		Name:   filepath.Base(path),
		Sheets: make(map[string]*models.RawSheet, len(RequiredSheets)),
	}
	for _, name := range RequiredSheets {
		sheet, err := parser.ReadSheet(f, name)
		if err != nil {
			return nil, &SheetError{SheetName: name, Err: err}
		}
		lgr.WithFields(logrus.Fields{
			"sheet":   name,
			"range":   sheet.Range,
			"columns": len(sheet.Columns),
			"rows":    len(sheet.Rows),
		}).Debug("read sheet")
		wb.Sheets[name] = sheet
	}

	return wb, nil
}

// checkSheets reports all required sheets missing from present at once.
func checkSheets(present []string) error {
	have := make(map[string]bool, len(present))
	for _, name := range present {
		have[name] = true
	}

	var missing []string
	for _, name := range RequiredSheets {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingSheetsError{Sheets: missing}
	}
	return nil
}
