package pipeline

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stoxyloader/types"
)

// Consolidate folds every ledger entry into a holding. BUY rows add to both
// quantity and cost, SELL rows reduce quantity only, so the average price
// stays anchored to what was paid. Positions folding to zero or negative
// quantity are dropped. Output follows ledger key order.
func Consolidate(ledger *types.Ledger) []types.Holding {
	var holdings []types.Holding

	for _, key := range ledger.Keys() {
		entry := ledger.Entry(key)

		quantity := decimal.Zero
		totalCost := decimal.Zero
		for _, tx := range entry.Transactions {
			switch tx.Kind {
			case types.TxKindBuy:
				quantity = quantity.Add(tx.Quantity)
				totalCost = totalCost.Add(tx.Quantity.Mul(tx.Price))
			case types.TxKindSell:
				quantity = quantity.Sub(tx.Quantity)
			}
		}

		if !quantity.IsPositive() {
			// Fully sold or over-sold, nothing left to hold.
			continue
		}

		purchasePrice := totalCost.Div(quantity)
		holdings = append(holdings, types.Holding{
			OwnerID:       entry.OwnerID,
			Symbol:        entry.Symbol,
			Name:          entry.Name,
			Quantity:      quantity,
			TotalCost:     totalCost,
			PurchasePrice: purchasePrice,
			Value:         quantity.Mul(purchasePrice),
			PurchaseDate:  parsePurchaseDate(entry.Transactions[0].Timestamp),
			AssetType:     Classify(entry.Symbol),
		})
	}
	return holdings
}

// parsePurchaseDate normalizes the first transaction's timestamp to a
// calendar date. Unparseable values yield nil, which is not an error.
func parsePurchaseDate(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		ts, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		date := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		return &date
	}
	return nil
}
