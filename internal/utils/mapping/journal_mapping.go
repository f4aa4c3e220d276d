package mapping

import (
	"github.com/tokopintar/tokokas/internal/core/domain"
	"github.com/tokopintar/tokokas/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:       d.EntryID,
		EntryDate:     d.EntryDate,
		DebitAccount:  d.DebitAccount,
		CreditAccount: d.CreditAccount,
		Amount:        d.Amount,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		EntryDate:     m.EntryDate,
		DebitAccount:  m.DebitAccount,
		CreditAccount: m.CreditAccount,
		Amount:        m.Amount,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries to domain entries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
