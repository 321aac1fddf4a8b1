package source

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"stoxyloader/types"
)

var ErrEmptySheet = errors.New("sheet has no rows")

// ReadXLSX reads a workbook export. An empty sheet name selects the first
// sheet. Cells come back as their formatted string values; the pipeline
// owns all further parsing.
func ReadXLSX(path, sheet string) ([]types.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrEmptySheet)
	}

	idx, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var records []types.RawRecord
	for _, row := range rows[1:] {
		if cell(row, idx.id) == "" {
			continue
		}
		records = append(records, rowToRecord(row, idx))
	}
	return records, nil
}
