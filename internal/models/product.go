package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form stored on every product.
const DateLayout = "2006-01-02"

// DefaultMinStock is the alert threshold assigned to new products.
const DefaultMinStock = 5

// Field width limits, matching the store's record format.
const (
	MaxNameLen     = 49
	MaxIDLen       = 9
	MaxCategoryLen = 29
	MaxDateLen     = 10
)

// Product represents a product entity in the inventory system.
// The ID and the creation date are assigned once and never change.
type Product struct {
	Name     string          `json:"name" validate:"required,max=49"`
	ID       string          `json:"id" validate:"max=9"`
	Category string          `json:"category" validate:"max=29"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	MinStock int             `json:"min_stock" validate:"gte=0"`
	Date     string          `json:"date"`
}

// New returns an empty product carrying the creation defaults: a minimum
// stock of DefaultMinStock and today's date.
func New() Product {
	return Product{
		Price:    decimal.Zero,
		MinStock: DefaultMinStock,
		Date:     time.Now().Format(DateLayout),
	}
}

// LowStock reports whether the quantity has fallen to or below the
// product's minimum stock threshold. An out-of-stock product (quantity
// zero) is also low; display layers render it as a harder alert.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}

// OutOfStock reports whether the product has no units left.
func (p Product) OutOfStock() bool {
	return p.Quantity == 0
}
