package repository

import (
	"context"
	"fmt"

	"stoxyloader/types"
)

const upsertPortfolioSQL = `
INSERT INTO portfolio (user_id, total_value, today_gain, today_gain_percent, stocks, crypto, created_at, updated_at)
VALUES ($1, 0, 0, 0, 0, 0, NOW(), NOW())
ON CONFLICT (user_id) DO NOTHING`

const updateTotalsSQL = `
UPDATE portfolio
SET total_value = $1,
    stocks = $2,
    crypto = $3,
    updated_at = NOW()
WHERE user_id = $4`

// EnsurePortfolio creates the portfolio row for an owner if it does not
// exist yet, leaving an existing row untouched.
func (db *Database) EnsurePortfolio(ownerID int, ctx context.Context) error {
	if _, err := db.conn.Exec(ctx, upsertPortfolioSQL, ownerID); err != nil {
		return fmt.Errorf("ensure portfolio for owner %d: %w", ownerID, err)
	}
	return nil
}

// UpdateTotals writes one owner's totals as a single statement so partial
// totals are never observable.
func (db *Database) UpdateTotals(totals types.PortfolioTotals, ctx context.Context) error {
	tag, err := db.conn.Exec(ctx, updateTotalsSQL,
		totals.TotalValue, totals.StocksValue, totals.CryptoValue, totals.OwnerID)
	if err != nil {
		return fmt.Errorf("update totals for owner %d: %w", totals.OwnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("owner %d: %w", totals.OwnerID, ErrPortfolioNotFound)
	}
	return nil
}
