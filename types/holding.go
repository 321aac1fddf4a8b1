package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"
)

// Holding is a consolidated open position. Value equals the cost basis
// until a pricing process overwrites it with live quotes.
type Holding struct {
	OwnerID       int
	Symbol        string
	Name          string
	Quantity      decimal.Decimal
	TotalCost     decimal.Decimal
	PurchasePrice decimal.Decimal
	Value         decimal.Decimal
	PurchaseDate  *time.Time
	AssetType     AssetType
}
