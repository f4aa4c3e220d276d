package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tokopintar/tokokas/internal/apperrors"
	"github.com/tokopintar/tokokas/internal/core/domain"
	portsrepo "github.com/tokopintar/tokokas/internal/core/ports/repositories"
	portssvc "github.com/tokopintar/tokokas/internal/core/ports/services"
	"github.com/tokopintar/tokokas/internal/dto"
	"github.com/tokopintar/tokokas/internal/middleware"
)

// inventoryService provides the inventory stock operations.
type inventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
	}
}

// Ensure inventoryService implements the portssvc.InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// UpsertItem creates an item or restocks an existing one. Restock quantities
// are non-negative; decreases go through AdjustStock.
func (s *inventoryService) UpsertItem(ctx context.Context, req dto.UpsertItemRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" {
		return fmt.Errorf("%w: item code must not be empty", apperrors.ErrValidation)
	}
	if name == "" {
		return fmt.Errorf("%w: item name must not be empty", apperrors.ErrValidation)
	}
	if req.StockDelta < 0 {
		return fmt.Errorf("%w: restock quantity must not be negative, got %d", apperrors.ErrValidation, req.StockDelta)
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative, got %s", apperrors.ErrValidation, req.Price.String())
	}

	if err := s.inventoryRepo.UpsertItem(ctx, code, name, req.StockDelta, req.Price); err != nil {
		logger.Error("Failed to upsert inventory item", slog.String("code", code), slog.String("error", err.Error()))
		return fmt.Errorf("failed to upsert inventory item %s: %w", code, err)
	}

	logger.Info("Inventory item upserted", slog.String("code", code), slog.Int64("stock_delta", req.StockDelta))
	return nil
}

// AdjustStock applies delta (possibly negative) to an item's stock. The
// repository serializes the check-then-write per item code, so stock never
// goes negative even under concurrent decrements.
func (s *inventoryService) AdjustStock(ctx context.Context, code string, delta int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("%w: item code must not be empty", apperrors.ErrValidation)
	}

	if err := s.inventoryRepo.AdjustStock(ctx, code, delta); err != nil {
		// NotFound and InsufficientStock are expected outcomes, not faults.
		logger.Warn("Stock adjustment rejected", slog.String("code", code), slog.Int64("delta", delta), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Stock adjusted", slog.String("code", code), slog.Int64("delta", delta))
	return nil
}

// ListItems returns all inventory items in code order.
func (s *inventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	items, err := s.inventoryRepo.ListItems(ctx)
	if err != nil {
		logger.Error("Failed to list inventory items", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve inventory items: %w", err)
	}

	logger.Debug("Inventory items listed", slog.Int("count", len(items)))
	return items, nil
}
