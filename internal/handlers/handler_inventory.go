package handlers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokopintar/tokokas/internal/apperrors"
	portssvc "github.com/tokopintar/tokokas/internal/core/ports/services"
	"github.com/tokopintar/tokokas/internal/dto"
	"github.com/tokopintar/tokokas/internal/middleware"
	"github.com/tokopintar/tokokas/internal/utils"
)

// inventoryHandler handles HTTP requests related to inventory stock.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// newInventoryHandler creates a new inventoryHandler.
func newInventoryHandler(inventoryService portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
	}
}

// registerInventoryRoutes registers inventory specific routes
func registerInventoryRoutes(group *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade, writeLimit gin.HandlerFunc) {
	h := newInventoryHandler(inventoryService)

	inventory := group.Group("/inventory")
	{
		inventory.POST("", writeLimit, h.upsertItem)
		inventory.POST("/:code/adjust", writeLimit, h.adjustStock)
		inventory.GET("", h.listItems)
		inventory.GET("/export", h.exportItems)
	}
}

func (h *inventoryHandler) upsertItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.UpsertItemRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorDetail(err)})
		return
	}

	err := h.inventoryService.UpsertItem(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error upserting inventory item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			// Insert race lost; the client may retry, which re-reads stock.
			logger.Warn("Duplicate inventory item on upsert", slog.String("code", req.Code))
			c.JSON(http.StatusConflict, gin.H{"error": "Item was created concurrently, please retry"})
		default:
			logger.Error("Failed to upsert inventory item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inventory item"})
		}
		return
	}

	logger.Info("Inventory item saved", slog.String("code", req.Code))
	c.JSON(http.StatusOK, gin.H{"code": req.Code})
}

func (h *inventoryHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	req := dto.AdjustStockRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for adjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorDetail(err)})
		return
	}

	err := h.inventoryService.AdjustStock(c.Request.Context(), code, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Inventory item not found for adjustment", slog.String("code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		case errors.Is(err, apperrors.ErrInsufficientStock):
			// The message carries the available quantity for display.
			logger.Warn("Insufficient stock for adjustment", slog.String("code", code), slog.Int64("delta", req.Delta))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to adjust stock", slog.String("error", err.Error()), slog.String("code", code))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		}
		return
	}

	logger.Info("Stock adjusted", slog.String("code", code), slog.Int64("delta", req.Delta))
	c.JSON(http.StatusOK, gin.H{"code": code})
}

func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list inventory items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve inventory"})
		return
	}

	c.JSON(http.StatusOK, dto.ListInventoryResponse{Items: dto.ToInventoryItemResponses(items)})
}

func (h *inventoryHandler) exportItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export inventory items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export inventory"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="inventory.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Kode", "Nama", "Stok", "Harga", "Total"})
	for _, item := range items {
		_ = w.Write([]string{
			item.Code,
			item.Name,
			strconv.FormatInt(item.Stock, 10),
			utils.FormatRupiah(item.Price),
			utils.FormatRupiah(item.StockValue()),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to write inventory CSV", slog.String("error", err.Error()))
	}
}
