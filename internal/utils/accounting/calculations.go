package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tokopintar/tokokas/internal/core/domain"
)

// balanceTolerance is the allowance the display layer grants grand totals
// before flagging the books as unbalanced. With decimal arithmetic the totals
// match exactly, so this is a defensive check only.
var balanceTolerance = decimal.RequireFromString("0.01")

// BuildLedger derives the ledger (buku besar) for one account from a journal
// snapshot: every entry debiting the account becomes a debit row, every entry
// crediting it a credit row, merged in (date, id) order with a running balance
// of debit - credit. An entry whose debit and credit account are both the
// requested account yields two rows, the debit row first; it nets to zero in
// the balance. Accounts with no entries yield an empty slice, not an error.
func BuildLedger(account string, entries []domain.JournalEntry) []domain.LedgerRow {
	ordered := sortEntries(entries)

	rows := make([]domain.LedgerRow, 0)
	balance := decimal.Zero
	for _, e := range ordered {
		if e.DebitAccount == account {
			balance = balance.Add(e.Amount)
			rows = append(rows, domain.LedgerRow{
				EntryDate:   e.EntryDate,
				Description: e.Description,
				Reference:   e.Reference(),
				Debit:       e.Amount,
				Credit:      decimal.Zero,
				Balance:     balance,
			})
		}
		if e.CreditAccount == account {
			balance = balance.Sub(e.Amount)
			rows = append(rows, domain.LedgerRow{
				EntryDate:   e.EntryDate,
				Description: e.Description,
				Reference:   e.Reference(),
				Debit:       decimal.Zero,
				Credit:      e.Amount,
				Balance:     balance,
			})
		}
	}
	return rows
}

// BuildTrialBalance aggregates the whole journal into per-account debit and
// credit totals (neraca saldo). The account universe is the union of all
// debit and credit account names, sorted lexicographically.
func BuildTrialBalance(entries []domain.JournalEntry) domain.TrialBalance {
	debits := make(map[string]decimal.Decimal)
	credits := make(map[string]decimal.Decimal)
	for _, e := range entries {
		debits[e.DebitAccount] = debits[e.DebitAccount].Add(e.Amount)
		credits[e.CreditAccount] = credits[e.CreditAccount].Add(e.Amount)
	}

	accounts := make([]string, 0, len(debits)+len(credits))
	seen := make(map[string]struct{}, len(debits)+len(credits))
	for account := range debits {
		if _, ok := seen[account]; !ok {
			seen[account] = struct{}{}
			accounts = append(accounts, account)
		}
	}
	for account := range credits {
		if _, ok := seen[account]; !ok {
			seen[account] = struct{}{}
			accounts = append(accounts, account)
		}
	}
	sort.Strings(accounts)

	tb := domain.TrialBalance{
		Rows:        make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, account := range accounts {
		row := domain.TrialBalanceRow{
			Account: account,
			Debit:   debits[account],
			Credit:  credits[account],
		}
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}
	tb.Difference = tb.TotalDebit.Sub(tb.TotalCredit)
	tb.Balanced = Balanced(tb.TotalDebit, tb.TotalCredit)
	return tb
}

// Balanced reports whether grand totals agree within the display tolerance.
func Balanced(totalDebit, totalCredit decimal.Decimal) bool {
	return totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(balanceTolerance)
}

// sortEntries returns a copy of entries ordered by entry date ascending,
// ties broken by entry id ascending.
func sortEntries(entries []domain.JournalEntry) []domain.JournalEntry {
	ordered := make([]domain.JournalEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].EntryDate.Equal(ordered[j].EntryDate) {
			return ordered[i].EntryDate.Before(ordered[j].EntryDate)
		}
		return ordered[i].EntryID < ordered[j].EntryID
	})
	return ordered
}
