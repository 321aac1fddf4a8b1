package pipeline

import (
	"strings"

	"stoxyloader/types"
)

// Symbols containing any of these tokens are treated as crypto. Matching is
// a substring heuristic, so pairs like BTCUSDT classify without an exchange
// lookup.
var cryptoTokens = []string{"BTC", "ETH", "USDT", "BNB"}

// Classify maps an instrument symbol to its asset type. Case-insensitive,
// no external state.
func Classify(symbol string) types.AssetType {
	upper := strings.ToUpper(symbol)
	for _, token := range cryptoTokens {
		if strings.Contains(upper, token) {
			return types.AssetTypeCrypto
		}
	}
	return types.AssetTypeStock
}
