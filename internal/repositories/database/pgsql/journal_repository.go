package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokopintar/tokokas/internal/apperrors"
	"github.com/tokopintar/tokokas/internal/core/domain"
	portsrepo "github.com/tokopintar/tokokas/internal/core/ports/repositories"
	"github.com/tokopintar/tokokas/internal/models"
	"github.com/tokopintar/tokokas/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// NewPgxJournalRepository creates a new repository for general journal data.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry inserts a new journal entry and returns the assigned id.
// The id comes from the table's bigserial sequence, so concurrent appends get
// distinct ids without coordination.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	modelEntry := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (entry_date, debit_account, credit_account, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING entry_id;
	`
	var entryID int64
	err := r.Pool.QueryRow(ctx, query,
		modelEntry.EntryDate,
		modelEntry.DebitAccount,
		modelEntry.CreditAccount,
		modelEntry.Amount,
		modelEntry.Description,
		modelEntry.CreatedAt,
	).Scan(&entryID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert journal entry", err)
	}

	return entryID, nil
}

// ListEntries returns the full journal snapshot ordered by (entry_date, id)
// ascending. No pagination: the reports consume the whole journal at once.
func (r *PgxJournalRepository) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, entry_date, debit_account, credit_account, amount, description, created_at
		FROM journal_entries
		ORDER BY entry_date ASC, entry_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		err := rows.Scan(
			&e.EntryID,
			&e.EntryDate,
			&e.DebitAccount,
			&e.CreditAccount,
			&e.Amount,
			&e.Description,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	return mapping.ToDomainJournalEntrySlice(entries), nil
}
