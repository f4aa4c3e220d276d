package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a single dated record in the general journal, moving an
// amount from the credit account to the debit account. Entries are immutable
// once persisted; there is no update or delete path.
type JournalEntry struct {
	EntryID       int64           `json:"entryID"`   // Primary key, assigned by the store
	EntryDate     time.Time       `json:"entryDate"` // Calendar date, no time component
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"` // Non-negative
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Reference returns the display reference for the entry (e.g. "JU-12").
func (e JournalEntry) Reference() string {
	return EntryReference(e.EntryID)
}
