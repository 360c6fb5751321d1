package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
)

func TestComputeEmptyInventory(t *testing.T) {
	stats := Compute(nil)

	if stats.ProductCount != 0 || stats.TotalQuantity != 0 || stats.LowStockCount != 0 {
		t.Errorf("expected zero counts, got %+v", stats)
	}
	if !stats.TotalValue.IsZero() {
		t.Errorf("expected total value 0, got %s", stats.TotalValue)
	}
	if !stats.AveragePrice.IsZero() {
		t.Errorf("expected average price 0, got %s", stats.AveragePrice)
	}
	if stats.LowStockPercent != nil {
		t.Errorf("expected no low-stock percentage, got %v", *stats.LowStockPercent)
	}
}

func TestCompute(t *testing.T) {
	products := []models.Product{
		{Name: "Rice", ID: "P001", Quantity: 10, Price: decimal.RequireFromString("500.00"), MinStock: 5},
		{Name: "Beans", ID: "P002", Quantity: 3, Price: decimal.RequireFromString("250.00"), MinStock: 5},
		{Name: "Soap", ID: "P003", Quantity: 0, Price: decimal.RequireFromString("75.50"), MinStock: 2},
		{Name: "Milk", ID: "P004", Quantity: 7, Price: decimal.RequireFromString("120.25"), MinStock: 2},
	}

	stats := Compute(products)

	if stats.ProductCount != 4 {
		t.Errorf("expected 4 products, got %d", stats.ProductCount)
	}
	if stats.TotalQuantity != 20 {
		t.Errorf("expected total quantity 20, got %d", stats.TotalQuantity)
	}
	// 10*500 + 3*250 + 0*75.50 + 7*120.25 = 6591.75
	if want := decimal.RequireFromString("6591.75"); !stats.TotalValue.Equal(want) {
		t.Errorf("expected total value %s, got %s", want, stats.TotalValue)
	}
	// 6591.75 / 20 = 329.5875 -> 329.59
	if want := decimal.RequireFromString("329.59"); !stats.AveragePrice.Equal(want) {
		t.Errorf("expected average price %s, got %s", want, stats.AveragePrice)
	}
	if stats.LowStockCount != 2 {
		t.Errorf("expected 2 low-stock products, got %d", stats.LowStockCount)
	}
	if stats.LowStockPercent == nil {
		t.Fatal("expected a low-stock percentage")
	}
	if got := *stats.LowStockPercent; got != 50.0 {
		t.Errorf("expected 50%%, got %.1f", got)
	}
}

func TestComputeZeroQuantityAveragePrice(t *testing.T) {
	products := []models.Product{
		{Name: "Soap", ID: "P001", Quantity: 0, Price: decimal.RequireFromString("75.50"), MinStock: 2},
	}

	stats := Compute(products)

	if !stats.AveragePrice.IsZero() {
		t.Errorf("expected average price 0 when nothing is in stock, got %s", stats.AveragePrice)
	}
	if stats.LowStockPercent == nil || *stats.LowStockPercent != 100.0 {
		t.Errorf("expected 100%% low stock, got %v", stats.LowStockPercent)
	}
}

func TestLowStock(t *testing.T) {
	products := []models.Product{
		{Name: "Rice", ID: "P001", Quantity: 10, MinStock: 5},
		{Name: "Beans", ID: "P002", Quantity: 5, MinStock: 5},
		{Name: "Soap", ID: "P003", Quantity: 0, MinStock: 2},
	}

	low := LowStock(products)
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", len(low))
	}
	if low[0].ID != "P002" || low[1].ID != "P003" {
		t.Errorf("expected P002,P003 in storage order, got %s,%s", low[0].ID, low[1].ID)
	}

	if got := LowStock(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
