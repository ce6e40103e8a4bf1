// Package loader reads room programs from tabular files.
//
// A room program file has one row per room with the room name in the first
// column and the target area in square meters in the second. CSV and XLSX
// files are supported; an optional header row is detected and skipped.
// Malformed rows are reported individually as warnings and never abort the
// batch.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/program"
)

// Program is a loaded room program with per-row load warnings.
type Program struct {
	Rooms    []program.RoomInput
	Warnings []errors.Warning
}

// Load reads a room program file, dispatching on the file extension.
func Load(path string) (*Program, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported program file %q (expected .csv or .xlsx)", path)
	}
}

// parseRows converts raw rows into RoomInputs, collecting a warning for
// every rejected row. Row numbers in warnings are 1-based file positions.
func parseRows(rows [][]string, firstRow int) *Program {
	p := &Program{}

	for i, row := range rows {
		rowNum := firstRow + i
		if len(row) < 2 {
			if !rowEmpty(row) {
				p.warn(rowNum, "expected name and area columns, got %d column(s)", len(row))
			}
			continue
		}

		name := strings.TrimSpace(row[0])
		rawArea := strings.TrimSpace(row[1])
		if name == "" && rawArea == "" {
			continue
		}
		if err := errors.ValidateRoomName(name); err != nil {
			p.warn(rowNum, "%s", errors.UserMessage(err))
			continue
		}

		area, err := parseArea(rawArea)
		if err != nil {
			p.warn(rowNum, "invalid area %q", rawArea)
			continue
		}
		if err := errors.ValidateArea(area); err != nil {
			p.warn(rowNum, "%s", errors.UserMessage(err))
			continue
		}

		p.Rooms = append(p.Rooms, program.RoomInput{Name: name, AreaM2: area})
	}
	return p
}

func (p *Program) warn(row int, format string, args ...any) {
	p.Warnings = append(p.Warnings, errors.Warning{
		Code:    errors.ErrCodeInvalidInputRow,
		Row:     row,
		Message: fmt.Sprintf(format, args...),
	})
}

// looksLikeHeader reports whether the row is a header rather than data:
// it has a name column but no parsable area.
func looksLikeHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	if _, err := parseArea(strings.TrimSpace(row[1])); err == nil {
		return false
	}
	return strings.TrimSpace(row[0]) != ""
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
