package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gduarte/massing/pkg/errors"
)

// LoadCSV reads a room program from a CSV file.
func LoadCSV(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "program file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads a room program from CSV data.
// A header row is detected by its unparsable area column and skipped.
func ReadCSV(r io.Reader) (*Program, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv")
	}

	firstRow := 1
	if len(rows) > 0 && looksLikeHeader(rows[0]) {
		rows = rows[1:]
		firstRow = 2
	}
	return parseRows(rows, firstRow), nil
}

// parseArea parses an area cell, tolerating a decimal comma and a unit
// suffix such as "18,5 m2".
func parseArea(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, "m²"), "m2"))
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}
