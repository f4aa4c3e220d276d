package mapping

import (
	"github.com/tokopintar/tokokas/internal/core/domain"
	"github.com/tokopintar/tokokas/internal/models"
)

// ToDomainInventoryItem converts a model InventoryItem to a domain InventoryItem
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		Code:          m.Code,
		Name:          m.Name,
		Stock:         m.Stock,
		Price:         m.Price,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToDomainInventoryItemSlice converts a slice of model items to domain items
func ToDomainInventoryItemSlice(ms []models.InventoryItem) []domain.InventoryItem {
	ds := make([]domain.InventoryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryItem(m)
	}
	return ds
}
