package types

// LedgerKey identifies one position in the ledger.
type LedgerKey struct {
	OwnerID int
	Symbol  string
}

// LedgerEntry holds all transactions for one (owner, symbol) pair in
// original row order. Name is copied from the first row seen for the key.
type LedgerEntry struct {
	OwnerID      int
	Symbol       string
	Name         string
	Transactions []Transaction
}

// Ledger groups transactions by (owner, symbol). Keys keep their
// first-sighting order so consolidation output is deterministic.
type Ledger struct {
	keys    []LedgerKey
	entries map[LedgerKey]*LedgerEntry
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[LedgerKey]*LedgerEntry)}
}

// Append records a transaction under the given key, creating the entry on
// first sighting. The display name sticks from the first row.
func (l *Ledger) Append(key LedgerKey, name string, tx Transaction) {
	entry, ok := l.entries[key]
	if !ok {
		entry = &LedgerEntry{
			OwnerID: key.OwnerID,
			Symbol:  key.Symbol,
			Name:    name,
		}
		l.entries[key] = entry
		l.keys = append(l.keys, key)
	}
	entry.Transactions = append(entry.Transactions, tx)
}

// Keys returns ledger keys in first-sighting order.
func (l *Ledger) Keys() []LedgerKey {
	return l.keys
}

func (l *Ledger) Entry(key LedgerKey) *LedgerEntry {
	return l.entries[key]
}

func (l *Ledger) Len() int {
	return len(l.keys)
}
