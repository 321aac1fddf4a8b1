package source

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cellRef, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "transactions.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Id", "Portfolio", "Symbol", "Name", "Transaction", "Quantity", "Price", "Timestamp"},
		{"1", "Francisco", "AAPL", "Apple Inc.", "BUY", "10", "150.25", "2024-01-02"},
		{"", "", "", "", "", "", "", ""},
		{"2", "Adela", "ETH", "Ethereum", "BUY", "1.5", "2000", "2024-01-03"},
	})

	records, err := ReadXLSX(path, "")
	if err != nil {
		t.Fatalf("ReadXLSX() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (blank-Id row skipped)", len(records))
	}
	if records[0].Owner != "Francisco" || records[0].Symbol != "AAPL" || records[0].Price != "150.25" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].Owner != "Adela" || records[1].Quantity != "1.5" {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestReadXLSXMissingFile(t *testing.T) {
	if _, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), ""); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}
