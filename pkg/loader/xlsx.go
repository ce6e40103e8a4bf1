package loader

import (
	"github.com/xuri/excelize/v2"

	"github.com/gduarte/massing/pkg/errors"
)

// LoadXLSX reads a room program from the first sheet of an Excel workbook.
// The column layout matches the CSV format: name, area.
func LoadXLSX(path string) (*Program, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook %s", path)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %s", sheet)
	}

	firstRow := 1
	if len(rows) > 0 && looksLikeHeader(rows[0]) {
		rows = rows[1:]
		firstRow = 2
	}
	return parseRows(rows, firstRow), nil
}
