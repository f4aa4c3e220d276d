package services

import (
	"context"

	"github.com/tokopintar/tokokas/internal/core/domain"
	"github.com/tokopintar/tokokas/internal/dto"
)

// JournalSvcFacade exposes the general journal operations to the handlers.
type JournalSvcFacade interface {
	// AppendEntry validates and persists a new journal entry.
	AppendEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	// ListEntries returns the full journal ordered by (date, id) ascending.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
}
