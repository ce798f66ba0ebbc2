// Package spreadsheet reads portfolio workbooks and normalizes their rows
// into holding records with a fixed 14-column layout.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadRows loads every row of the workbook's first sheet as raw cell strings.
// The file is re-read on every call; nothing is cached.
func ReadRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}
