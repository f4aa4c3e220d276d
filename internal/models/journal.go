package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the persistence shape of a general journal row.
type JournalEntry struct {
	EntryID       int64           `json:"entryID"`   // Primary Key (bigserial)
	EntryDate     time.Time       `json:"entryDate"` // DATE column, no time component
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}
