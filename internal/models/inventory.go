package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is the persistence shape of a stocked product.
type InventoryItem struct {
	Code          string          `json:"code"` // Primary Key
	Name          string          `json:"name"`
	Stock         int64           `json:"stock"` // CHECK (stock >= 0)
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
