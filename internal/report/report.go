// Package report computes aggregate inventory statistics and filter views.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
)

// Statistics aggregates the whole inventory. LowStockPercent is nil when
// there are no products, so callers can render the no-percentage branch
// instead of dividing by zero.
type Statistics struct {
	ProductCount    int             `json:"product_count"`
	TotalQuantity   int             `json:"total_quantity"`
	TotalValue      decimal.Decimal `json:"total_value"`
	AveragePrice    decimal.Decimal `json:"average_price"`
	LowStockCount   int             `json:"low_stock_count"`
	LowStockPercent *float64        `json:"low_stock_percent,omitempty"`
}

// Compute aggregates counts, totals and the low-stock ratio over the
// given products. The average price per unit is total value divided by
// total quantity, and zero when nothing is in stock.
func Compute(products []models.Product) Statistics {
	stats := Statistics{
		ProductCount: len(products),
		TotalValue:   decimal.Zero,
		AveragePrice: decimal.Zero,
	}

	for _, p := range products {
		stats.TotalQuantity += p.Quantity
		stats.TotalValue = stats.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.LowStock() {
			stats.LowStockCount++
		}
	}

	if stats.TotalQuantity > 0 {
		stats.AveragePrice = stats.TotalValue.
			Div(decimal.NewFromInt(int64(stats.TotalQuantity))).
			Round(2)
	}
	if stats.ProductCount > 0 {
		pct := float64(stats.LowStockCount) / float64(stats.ProductCount) * 100
		stats.LowStockPercent = &pct
	}
	return stats
}

// LowStock returns, in storage order, the products at or below their
// minimum stock threshold.
func LowStock(products []models.Product) []models.Product {
	var low []models.Product
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low
}
