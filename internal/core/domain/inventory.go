package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked product. Stock never goes below zero; the
// repository enforces that atomically per item code.
type InventoryItem struct {
	Code          string          `json:"code"` // Primary key
	Name          string          `json:"name"`
	Stock         int64           `json:"stock"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// StockValue returns stock * price, the item's total value at current price.
func (i InventoryItem) StockValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Stock))
}
