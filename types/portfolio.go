package types

import (
	"github.com/shopspring/decimal"
)

// PortfolioTotals is the per-owner rollup of retained holdings,
// partitioned by asset type.
type PortfolioTotals struct {
	OwnerID     int
	TotalValue  decimal.Decimal
	StocksValue decimal.Decimal
	CryptoValue decimal.Decimal
}
