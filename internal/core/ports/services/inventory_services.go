package services

import (
	"context"

	"github.com/tokopintar/tokokas/internal/core/domain"
	"github.com/tokopintar/tokokas/internal/dto"
)

// InventorySvcFacade exposes the inventory stock operations to the handlers.
type InventorySvcFacade interface {
	// UpsertItem creates or restocks an item (stock is additive, price and
	// name are overwritten).
	UpsertItem(ctx context.Context, req dto.UpsertItemRequest) error
	// AdjustStock applies a positive or negative delta to an item's stock,
	// never letting it go below zero.
	AdjustStock(ctx context.Context, code string, delta int64) error
	// ListItems returns all items in code order.
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
}
