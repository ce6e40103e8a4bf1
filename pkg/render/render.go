// Package render turns massing records into export artifacts.
//
// Supported formats are machine-readable JSON and CSV plus a standalone
// HTML report with interactive charts. Terminal presentation lives in the
// CLI layer, not here.
package render

import (
	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/massing"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatHTML = "html"
)

// ValidFormats maps format names to validity for fast lookup.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatCSV:  true,
	FormatHTML: true,
}

// Input bundles everything an artifact may need.
type Input struct {
	Records  []massing.Record
	Stats    massing.BatchStats
	Warnings []errors.Warning

	// Dropped counts circulation rooms excluded from the records.
	Dropped int
}

// Render produces the artifact for a single format.
func Render(in Input, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return renderJSON(in)
	case FormatCSV:
		return renderCSV(in)
	case FormatHTML:
		return renderHTML(in)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

// Extension returns the file extension for a format, without the dot.
func Extension(format string) string {
	return format
}
