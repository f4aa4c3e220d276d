package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tokopintar/tokokas/internal/core/domain"
	"github.com/tokopintar/tokokas/internal/utils"
)

const dateLayout = "2006-01-02"

// CreateJournalEntryRequest is the payload for appending a journal entry.
// The date is an ISO 8601 calendar date without a time component.
type CreateJournalEntryRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	DebitAccount  string          `json:"debitAccount" binding:"required"`
	CreditAccount string          `json:"creditAccount" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID       int64           `json:"entryID"`
	Date          string          `json:"date"`
	Reference     string          `json:"reference"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amountDisplay"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListJournalEntriesResponse is the full journal snapshot.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:       e.EntryID,
		Date:          e.EntryDate.Format(dateLayout),
		Reference:     e.Reference(),
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		Amount:        e.Amount,
		AmountDisplay: utils.FormatRupiah(e.Amount),
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain entries to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return responses
}
