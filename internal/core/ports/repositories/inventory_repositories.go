package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tokopintar/tokokas/internal/core/domain"
)

// InventoryRepositoryFacade defines persistence operations for inventory
// items. Implementations must serialize the check-then-write sequence per
// item code: concurrent decrements may never both pass the non-negativity
// check against a stale read.
type InventoryRepositoryFacade interface {
	// UpsertItem creates the item, or adds stockDelta to the existing stock
	// and overwrites name and price (additive restock semantics).
	UpsertItem(ctx context.Context, code string, name string, stockDelta int64, price decimal.Decimal) error
	// AdjustStock applies delta (possibly negative) to the item's stock.
	// Returns ErrNotFound for an unknown code and ErrInsufficientStock if the
	// result would be negative; stock is left unchanged on failure.
	AdjustStock(ctx context.Context, code string, delta int64) error
	// ListItems returns all items in primary-key (code) order.
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
}
