package repositories

import (
	"context"

	"github.com/tokopintar/tokokas/internal/core/domain"
)

// JournalRepositoryFacade defines persistence operations for the general
// journal. The journal is append-only: there is no update or delete.
type JournalRepositoryFacade interface {
	// SaveEntry durably persists a new entry and returns the assigned id.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) (int64, error)
	// ListEntries returns a full snapshot of the journal ordered by
	// (entry date, id) ascending.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
}
