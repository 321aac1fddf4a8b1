// Package source reads transaction ledger exports into raw records for the
// pipeline. The sheet layout follows the upstream export: one header row
// with Id, Portfolio, Symbol, Name, Transaction, Quantity, Price and
// Timestamp columns, one transaction per row.
package source

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingColumn = errors.New("required column missing from header")

type columnIndex struct {
	id        int
	owner     int
	symbol    int
	name      int
	kind      int
	quantity  int
	price     int
	timestamp int
}

func mapColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	idx := columnIndex{}
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{"id", &idx.id},
		{"portfolio", &idx.owner},
		{"symbol", &idx.symbol},
		{"name", &idx.name},
		{"transaction", &idx.kind},
		{"quantity", &idx.quantity},
		{"price", &idx.price},
		{"timestamp", &idx.timestamp},
	} {
		i, ok := byName[col.name]
		if !ok {
			return columnIndex{}, fmt.Errorf("%q: %w", col.name, ErrMissingColumn)
		}
		*col.dst = i
	}
	return idx, nil
}

// cell returns the trimmed value at i, tolerating rows shorter than the
// header.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
