package repository

import (
	"context"
	"fmt"

	"stoxyloader/types"
)

const clearHoldingsSQL = `DELETE FROM holdings WHERE user_id = ANY($1)`

const insertHoldingSQL = `
INSERT INTO holdings
(user_id, symbol, name, quantity, value, change, change_percent, purchase_price, purchase_date, type, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 0, 0, $6, $7, $8, NOW(), NOW())`

// FailedRecord is one holding that could not be persisted.
type FailedRecord struct {
	OwnerID int
	Symbol  string
	Err     error
}

// BatchResult aggregates the outcome of persisting one holdings batch.
type BatchResult struct {
	Inserted int
	Failed   []FailedRecord
}

// ClearHoldings removes every stored holding for the given owners ahead of
// a fresh load.
func (db *Database) ClearHoldings(ownerIDs []int, ctx context.Context) error {
	if _, err := db.conn.Exec(ctx, clearHoldingsSQL, ownerIDs); err != nil {
		return fmt.Errorf("clear holdings: %w", err)
	}
	return nil
}

// SaveHoldings inserts holdings one row at a time, collecting per-row
// failures instead of aborting the batch. The change columns start at zero;
// a pricing process fills them in later. The progress callback, when set,
// fires after each attempted row.
func (db *Database) SaveHoldings(holdings []types.Holding, progress func(), ctx context.Context) BatchResult {
	var result BatchResult
	for _, h := range holdings {
		err := db.insertHolding(h, ctx)
		if err != nil {
			result.Failed = append(result.Failed, FailedRecord{
				OwnerID: h.OwnerID,
				Symbol:  h.Symbol,
				Err:     err,
			})
		} else {
			result.Inserted++
		}
		if progress != nil {
			progress()
		}
	}
	return result
}

func (db *Database) insertHolding(h types.Holding, ctx context.Context) error {
	_, err := db.conn.Exec(ctx, insertHoldingSQL,
		h.OwnerID, h.Symbol, h.Name, h.Quantity, h.Value, h.PurchasePrice, h.PurchaseDate, string(h.AssetType))
	if err != nil {
		return fmt.Errorf("insert holding %s for owner %d: %w", h.Symbol, h.OwnerID, err)
	}
	return nil
}
