package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tokopintar/tokokas/internal/core/domain"
	"github.com/tokopintar/tokokas/internal/utils"
)

// UpsertItemRequest creates an item or restocks an existing one. StockDelta
// is added to the current stock; price and name are overwritten.
type UpsertItemRequest struct {
	Code       string          `json:"code" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	StockDelta int64           `json:"stockDelta" binding:"gte=0"`
	Price      decimal.Decimal `json:"price"`
}

// AdjustStockRequest applies a delta to an item's stock. Negative deltas
// decrease stock; the store rejects any adjustment that would go below zero.
type AdjustStockRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

// InventoryItemResponse defines the data returned for an inventory item.
// Total is stock * price, the column the stock page displays.
type InventoryItemResponse struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Stock        int64           `json:"stock"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"priceDisplay"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"totalDisplay"`
}

// ListInventoryResponse is the full inventory listing.
type ListInventoryResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its response DTO.
func ToInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	total := i.StockValue()
	return InventoryItemResponse{
		Code:         i.Code,
		Name:         i.Name,
		Stock:        i.Stock,
		Price:        i.Price,
		PriceDisplay: utils.FormatRupiah(i.Price),
		Total:        total,
		TotalDisplay: utils.FormatRupiah(total),
	}
}

// ToInventoryItemResponses converts a slice of domain items to DTOs.
func ToInventoryItemResponses(items []domain.InventoryItem) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToInventoryItemResponse(&item)
	}
	return responses
}
