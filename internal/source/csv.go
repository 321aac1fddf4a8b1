package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"stoxyloader/types"
)

// ReadCSVFile reads a CSV export from disk.
func ReadCSVFile(path string) ([]types.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a CSV export. The first row must be the header; rows with
// a blank Id cell are skipped, matching how the upstream sheet marks empty
// filler rows.
func ReadCSV(r io.Reader) ([]types.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []types.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if cell(row, idx.id) == "" {
			continue
		}
		records = append(records, rowToRecord(row, idx))
	}
	return records, nil
}

func rowToRecord(row []string, idx columnIndex) types.RawRecord {
	return types.RawRecord{
		Owner:     cell(row, idx.owner),
		Symbol:    cell(row, idx.symbol),
		Name:      cell(row, idx.name),
		Kind:      cell(row, idx.kind),
		Quantity:  cell(row, idx.quantity),
		Price:     cell(row, idx.price),
		Timestamp: cell(row, idx.timestamp),
	}
}
