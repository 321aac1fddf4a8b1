package pipeline

import (
	"github.com/shopspring/decimal"

	"stoxyloader/types"
)

// Aggregate sums holding values into per-owner totals, split by asset type.
// Every owner in ownerIDs gets a totals row, zeroed when it has no retained
// holdings. Pure and idempotent; output follows ownerIDs order.
func Aggregate(holdings []types.Holding, ownerIDs []int) []types.PortfolioTotals {
	byOwner := make(map[int]*types.PortfolioTotals, len(ownerIDs))
	totals := make([]types.PortfolioTotals, len(ownerIDs))
	for i, id := range ownerIDs {
		totals[i] = types.PortfolioTotals{
			OwnerID:     id,
			TotalValue:  decimal.Zero,
			StocksValue: decimal.Zero,
			CryptoValue: decimal.Zero,
		}
		byOwner[id] = &totals[i]
	}

	for _, holding := range holdings {
		t, ok := byOwner[holding.OwnerID]
		if !ok {
			continue
		}
		t.TotalValue = t.TotalValue.Add(holding.Value)
		switch holding.AssetType {
		case types.AssetTypeCrypto:
			t.CryptoValue = t.CryptoValue.Add(holding.Value)
		default:
			t.StocksValue = t.StocksValue.Add(holding.Value)
		}
	}
	return totals
}
