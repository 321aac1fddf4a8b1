package types

import (
	"github.com/shopspring/decimal"
)

type TxKind string

const (
	TxKindBuy  TxKind = "BUY"
	TxKindSell TxKind = "SELL"
)

// Transaction is a single sanitized ledger row. Quantity and Price are
// already coerced by the ingester; Timestamp keeps the raw cell value
// because only the first row per position ever needs it parsed.
type Transaction struct {
	Kind      TxKind
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	Timestamp string
}

// RawRecord is one unsanitized row from the input file. All fields are
// strings as they come out of the sheet; parsing happens in the ingester.
type RawRecord struct {
	Owner     string
	Symbol    string
	Name      string
	Kind      string
	Quantity  string
	Price     string
	Timestamp string
}
