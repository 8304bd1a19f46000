// Package resumedata builds a normalized résumé document from an Excel workbook.
package resumedata

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures build behavior.
type Options struct {
	// Logger receives sheet-level progress records.
	// If nil, records are discarded.
	Logger *logrus.Entry
	// Clock supplies the generation instant.
	// If nil, time.Now is used.
	Clock func() time.Time
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		Clock: time.Now,
	}
}

func (o Options) logger() *logrus.Entry {
	if o.Logger != nil {
		return o.Logger
	}
	lgr := logrus.New()
	lgr.SetOutput(io.Discard)
	return logrus.NewEntry(lgr)
}

func (o Options) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}
