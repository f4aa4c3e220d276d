package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one line of a per-account ledger (buku besar). Exactly one of
// Debit and Credit is non-zero, except for a zero-amount journal entry.
type LedgerRow struct {
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"` // Derived from the journal entry id
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // Running sum of debit - credit
}

// TrialBalanceRow is the per-account debit and credit total across the whole
// journal (neraca saldo).
type TrialBalanceRow struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// TrialBalance is the full trial balance report with grand totals.
// TotalDebit always equals TotalCredit under the journal's append contract
// (each entry contributes the same amount to one debit bucket and one credit
// bucket); Balanced exists as a defensive check only.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Difference  decimal.Decimal   `json:"difference"`
	Balanced    bool              `json:"balanced"`
}

// EntryReference derives the display reference for a journal entry id.
func EntryReference(entryID int64) string {
	return fmt.Sprintf("JU-%d", entryID)
}
