package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
)

func tempStore(t *testing.T, maxRecords int) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "data.txt"), maxRecords)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t, 1000)

	products := []models.Product{
		{Name: "Rice", ID: "P001", Category: "Food", Quantity: 10, Price: decimal.RequireFromString("500.00"), MinStock: 5, Date: "2026-08-31"},
		{Name: "Olive Oil, Extra", ID: "P002", Category: "Food", Quantity: 2, Price: decimal.RequireFromString("1250.50"), MinStock: 3, Date: "2026-08-30"},
		{Name: "Soap", ID: "P003", Category: "Hygiene", Quantity: 0, Price: decimal.RequireFromString("75.25"), MinStock: 5, Date: "2026-08-29"},
	}
	if err := s.Save(products); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, skipped, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected no skipped lines, got %d", skipped)
	}
	if len(loaded) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(loaded))
	}
	for i, want := range products {
		got := loaded[i]
		if got.Name != want.Name || got.ID != want.ID || got.Category != want.Category ||
			got.Quantity != want.Quantity || got.MinStock != want.MinStock || got.Date != want.Date {
			t.Errorf("product %d = %+v, want %+v", i, got, want)
		}
		if !got.Price.Equal(want.Price) {
			t.Errorf("product %d price = %s, want %s", i, got.Price, want.Price)
		}
	}
}

func TestLoadMissingFileIsColdStart(t *testing.T) {
	s := tempStore(t, 1000)

	products, skipped, err := s.Load()
	if err != nil {
		t.Fatalf("expected cold start, got error %v", err)
	}
	if len(products) != 0 || skipped != 0 {
		t.Errorf("expected empty result, got %d products, %d skipped", len(products), skipped)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	lines := []string{
		"Rice,P001,Food,10,500.00,5,2026-08-31",                     // good, legacy unquoted form
		"too,few,fields",                                            // wrong field count
		"Beans,P002,Food,abc,30.00,5,2026-08-31",                    // non-numeric quantity
		"Corn,P003,Food,4,-1.00,5,2026-08-31",                       // negative price
		",P004,Food,4,10.00,5,2026-08-31",                           // empty name
		strings.Repeat("x", 60) + ",P005,Food,4,10.00,5,2026-08-31", // name over width limit
		"Milk,P006,Dairy,6,80.00,2,2026-08-31",                      // good
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path, 1000)
	products, skipped, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if skipped != 5 {
		t.Errorf("expected 5 skipped lines, got %d", skipped)
	}
	if products[0].ID != "P001" || products[1].ID != "P006" {
		t.Errorf("expected P001,P006 in order, got %s,%s", products[0].ID, products[1].ID)
	}
}

func TestLoadStopsAtCapacity(t *testing.T) {
	s := tempStore(t, 2)

	if err := s.Save([]models.Product{
		{Name: "A", ID: "P001", Quantity: 1, Price: decimal.NewFromInt(1), MinStock: 1, Date: "2026-08-31"},
		{Name: "B", ID: "P002", Quantity: 1, Price: decimal.NewFromInt(1), MinStock: 1, Date: "2026-08-31"},
		{Name: "C", ID: "P003", Quantity: 1, Price: decimal.NewFromInt(1), MinStock: 1, Date: "2026-08-31"},
	}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	products, _, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected load capped at 2, got %d", len(products))
	}
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	s := tempStore(t, 1000)

	if err := s.Save([]models.Product{
		{Name: "A", ID: "P001", Quantity: 1, Price: decimal.NewFromInt(1), MinStock: 1, Date: "2026-08-31"},
		{Name: "B", ID: "P002", Quantity: 1, Price: decimal.NewFromInt(1), MinStock: 1, Date: "2026-08-31"},
	}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := s.Save([]models.Product{
		{Name: "C", ID: "P003", Quantity: 1, Price: decimal.NewFromInt(1), MinStock: 1, Date: "2026-08-31"},
	}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	products, _, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID != "P003" {
		t.Errorf("expected only P003 after rewrite, got %+v", products)
	}
}

func TestTruncate(t *testing.T) {
	s := tempStore(t, 1000)

	if err := s.Save([]models.Product{
		{Name: "A", ID: "P001", Quantity: 1, Price: decimal.NewFromInt(1), MinStock: 1, Date: "2026-08-31"},
	}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := s.Truncate(); err != nil {
		t.Fatalf("unexpected truncate error: %v", err)
	}

	products, skipped, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 || skipped != 0 {
		t.Errorf("expected empty store, got %d products, %d skipped", len(products), skipped)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	// The store path is a directory, so the create must fail.
	s := NewFileStore(t.TempDir(), 1000)

	err := s.Save([]models.Product{
		{Name: "A", ID: "P001", Quantity: 1, Price: decimal.NewFromInt(1), MinStock: 1, Date: "2026-08-31"},
	})
	if err == nil {
		t.Fatal("expected an error saving to a directory path")
	}
}
