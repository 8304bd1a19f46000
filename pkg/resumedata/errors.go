package resumedata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceNotFound indicates the workbook file does not exist.
var ErrSourceNotFound = errors.New("workbook not found")

// ErrInvalidFormat indicates the workbook is not a readable xlsx file.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingSheets indicates required sheets are absent from the workbook.
var ErrMissingSheets = errors.New("missing sheets")

// MissingSheetsError lists every required sheet absent from a workbook.
type MissingSheetsError struct {
	Sheets []string
}

func (e *MissingSheetsError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingSheets, strings.Join(e.Sheets, ", "))
}

// Is makes errors.Is(err, ErrMissingSheets) hold.
func (e *MissingSheetsError) Is(target error) bool {
	return target == ErrMissingSheets
}

// SheetError represents a failure to read a sheet that is present.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("read sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
