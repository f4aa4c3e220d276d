package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tokopintar/tokokas/internal/core/domain"
	"github.com/tokopintar/tokokas/internal/utils"
)

// LedgerRowResponse represents a row in the per-account ledger response
type LedgerRowResponse struct {
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	Reference      string          `json:"reference"`
	Debit          decimal.Decimal `json:"debit"`
	DebitDisplay   string          `json:"debitDisplay"`
	Credit         decimal.Decimal `json:"credit"`
	CreditDisplay  string          `json:"creditDisplay"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balanceDisplay"`
}

// LedgerResponse represents the per-account ledger report response
type LedgerResponse struct {
	Account string              `json:"account"`
	Rows    []LedgerRowResponse `json:"rows"`
}

// TrialBalanceRowResponse represents a row in the trial balance response
type TrialBalanceRowResponse struct {
	Account       string          `json:"account"`
	Debit         decimal.Decimal `json:"debit"`
	DebitDisplay  string          `json:"debitDisplay"`
	Credit        decimal.Decimal `json:"credit"`
	CreditDisplay string          `json:"creditDisplay"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Difference decimal.Decimal `json:"difference"`
	Balanced   bool            `json:"balanced"`
}

// ToLedgerResponse converts ledger rows for one account to the response DTO.
func ToLedgerResponse(account string, rows []domain.LedgerRow) LedgerResponse {
	resp := LedgerResponse{
		Account: account,
		Rows:    make([]LedgerRowResponse, len(rows)),
	}
	for i, r := range rows {
		resp.Rows[i] = LedgerRowResponse{
			Date:           r.EntryDate.Format(dateLayout),
			Description:    r.Description,
			Reference:      r.Reference,
			Debit:          r.Debit,
			DebitDisplay:   utils.FormatRupiah(r.Debit),
			Credit:         r.Credit,
			CreditDisplay:  utils.FormatRupiah(r.Credit),
			Balance:        r.Balance,
			BalanceDisplay: utils.FormatRupiah(r.Balance),
		}
	}
	return resp
}

// ToTrialBalanceResponse converts a domain.TrialBalance to the response DTO.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		Rows:       make([]TrialBalanceRowResponse, len(tb.Rows)),
		Difference: tb.Difference,
		Balanced:   tb.Balanced,
	}
	for i, r := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			Account:       r.Account,
			Debit:         r.Debit,
			DebitDisplay:  utils.FormatRupiah(r.Debit),
			Credit:        r.Credit,
			CreditDisplay: utils.FormatRupiah(r.Credit),
		}
	}
	resp.Totals.Debit = tb.TotalDebit
	resp.Totals.Credit = tb.TotalCredit
	return resp
}
