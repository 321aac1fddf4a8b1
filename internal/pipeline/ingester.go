package pipeline

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stoxyloader/types"
)

// Layouts accepted for timestamp cells, covering ISO-8601 with and without
// a UTC designator plus plain dates.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DroppedRow records an input row that produced no transaction because its
// owner name is not configured.
type DroppedRow struct {
	Index int
	Owner string
}

// IngestReport is the structured outcome of one ingest pass. Dropped rows
// are surfaced here as a diagnostic; the ledger itself never sees them.
type IngestReport struct {
	RowsSeen int
	Recorded int
	Dropped  []DroppedRow
}

// Ingest groups raw rows into a ledger keyed by (owner, symbol). Rows with
// an unconfigured owner are dropped and reported; malformed quantity and
// price cells are coerced to zero rather than rejected.
func Ingest(rows []types.RawRecord, owners map[string]int) (*types.Ledger, IngestReport) {
	ledger := types.NewLedger()
	report := IngestReport{RowsSeen: len(rows)}

	for i, row := range rows {
		ownerID, ok := owners[row.Owner]
		if !ok {
			report.Dropped = append(report.Dropped, DroppedRow{Index: i, Owner: row.Owner})
			continue
		}

		key := types.LedgerKey{OwnerID: ownerID, Symbol: row.Symbol}
		tx := types.Transaction{
			Kind:      types.TxKind(strings.ToUpper(strings.TrimSpace(row.Kind))),
			Quantity:  parseQuantity(row.Quantity),
			Price:     parsePrice(row.Price),
			Timestamp: row.Timestamp,
		}
		ledger.Append(key, row.Name, tx)
		report.Recorded++
	}
	return ledger, report
}

func parseQuantity(raw string) decimal.Decimal {
	qty, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return qty
}

func parsePrice(raw string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if looksLikeTimestamp(trimmed) {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// Some upstream exports mis-encode prices as timestamps. A price cell that
// parses as a timestamp is a known defect, not a price, and coerces to 0.
func looksLikeTimestamp(raw string) bool {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, raw); err == nil {
			return true
		}
	}
	return false
}
