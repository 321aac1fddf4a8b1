package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"stoxyloader/types"
)

var testOwners = map[string]int{
	"Francisco": 1,
	"Jaime":     2,
}

func TestIngestGroupsRowsByOwnerAndSymbol(t *testing.T) {
	rows := []types.RawRecord{
		{Owner: "Francisco", Symbol: "AAPL", Name: "Apple Inc.", Kind: "BUY", Quantity: "10", Price: "100", Timestamp: "2024-01-02"},
		{Owner: "Jaime", Symbol: "AAPL", Name: "Apple Inc.", Kind: "BUY", Quantity: "3", Price: "101", Timestamp: "2024-01-03"},
		{Owner: "Francisco", Symbol: "BTCUSDT", Name: "Bitcoin", Kind: "BUY", Quantity: "0.5", Price: "40000", Timestamp: "2024-01-04"},
		{Owner: "Francisco", Symbol: "AAPL", Name: "Apple Inc.", Kind: "SELL", Quantity: "4", Price: "110", Timestamp: "2024-01-05"},
	}

	ledger, report := Ingest(rows, testOwners)

	if report.RowsSeen != 4 || report.Recorded != 4 || len(report.Dropped) != 0 {
		t.Fatalf("report = %+v, want 4 seen, 4 recorded, 0 dropped", report)
	}

	wantKeys := []types.LedgerKey{
		{OwnerID: 1, Symbol: "AAPL"},
		{OwnerID: 2, Symbol: "AAPL"},
		{OwnerID: 1, Symbol: "BTCUSDT"},
	}
	keys := ledger.Keys()
	if len(keys) != len(wantKeys) {
		t.Fatalf("got %d keys, want %d", len(keys), len(wantKeys))
	}
	for i, want := range wantKeys {
		if keys[i] != want {
			t.Errorf("key[%d] = %v, want %v", i, keys[i], want)
		}
	}

	entry := ledger.Entry(types.LedgerKey{OwnerID: 1, Symbol: "AAPL"})
	if len(entry.Transactions) != 2 {
		t.Fatalf("got %d transactions for owner 1 AAPL, want 2", len(entry.Transactions))
	}
	if entry.Transactions[0].Kind != types.TxKindBuy || entry.Transactions[1].Kind != types.TxKindSell {
		t.Errorf("transaction order not preserved: %v, %v", entry.Transactions[0].Kind, entry.Transactions[1].Kind)
	}
	if entry.Name != "Apple Inc." {
		t.Errorf("entry name = %q, want first-seen display name", entry.Name)
	}
}

func TestIngestDropsUnknownOwner(t *testing.T) {
	rows := []types.RawRecord{
		{Owner: "Francisco", Symbol: "AAPL", Kind: "BUY", Quantity: "1", Price: "100"},
		{Owner: "Nadie", Symbol: "AAPL", Kind: "BUY", Quantity: "1", Price: "100"},
	}

	ledger, report := Ingest(rows, testOwners)

	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d keys, want 1", ledger.Len())
	}
	if report.Recorded != 1 {
		t.Errorf("recorded = %d, want 1", report.Recorded)
	}
	if len(report.Dropped) != 1 || report.Dropped[0].Index != 1 || report.Dropped[0].Owner != "Nadie" {
		t.Errorf("dropped = %+v, want row 1 owner Nadie", report.Dropped)
	}
}

func TestIngestCoercesMalformedCells(t *testing.T) {
	tests := []struct {
		name         string
		quantity     string
		price        string
		wantQuantity decimal.Decimal
		wantPrice    decimal.Decimal
	}{
		{"clean row", "10", "99.5", decimal.NewFromInt(10), decimal.NewFromFloat(99.5)},
		{"blank quantity", "", "99.5", decimal.Zero, decimal.NewFromFloat(99.5)},
		{"garbage quantity", "ten", "99.5", decimal.Zero, decimal.NewFromFloat(99.5)},
		{"blank price", "10", "", decimal.NewFromInt(10), decimal.Zero},
		{"price encoded as timestamp", "10", "2024-03-01 00:00:00", decimal.NewFromInt(10), decimal.Zero},
		{"price encoded as iso timestamp", "10", "2024-03-01T10:30:00Z", decimal.NewFromInt(10), decimal.Zero},
		{"garbage price", "10", "n/a", decimal.NewFromInt(10), decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []types.RawRecord{
				{Owner: "Jaime", Symbol: "AAPL", Kind: "BUY", Quantity: tt.quantity, Price: tt.price},
			}
			ledger, _ := Ingest(rows, testOwners)

			tx := ledger.Entry(types.LedgerKey{OwnerID: 2, Symbol: "AAPL"}).Transactions[0]
			if !tx.Quantity.Equal(tt.wantQuantity) {
				t.Errorf("quantity = %s, want %s", tx.Quantity, tt.wantQuantity)
			}
			if !tx.Price.Equal(tt.wantPrice) {
				t.Errorf("price = %s, want %s", tx.Price, tt.wantPrice)
			}
		})
	}
}

func TestIngestNormalizesKind(t *testing.T) {
	rows := []types.RawRecord{
		{Owner: "Jaime", Symbol: "AAPL", Kind: " buy ", Quantity: "1", Price: "100"},
	}
	ledger, _ := Ingest(rows, testOwners)

	tx := ledger.Entry(types.LedgerKey{OwnerID: 2, Symbol: "AAPL"}).Transactions[0]
	if tx.Kind != types.TxKindBuy {
		t.Errorf("kind = %q, want %q", tx.Kind, types.TxKindBuy)
	}
}
