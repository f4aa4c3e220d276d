package services

import (
	"context"

	"github.com/tokopintar/tokokas/internal/core/domain"
)

// ReportingSvcFacade derives reports from the journal. Both reports read the
// full journal snapshot on demand; nothing is cached or updated incrementally.
type ReportingSvcFacade interface {
	// Ledger builds the per-account ledger. An account with no entries yields
	// an empty row slice, not an error.
	Ledger(ctx context.Context, account string) ([]domain.LedgerRow, error)
	// TrialBalance aggregates per-account debit/credit totals with grand
	// totals and the balanced flag.
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)
}
