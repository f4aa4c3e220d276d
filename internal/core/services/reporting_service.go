package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tokopintar/tokokas/internal/core/domain"
	portsrepo "github.com/tokopintar/tokokas/internal/core/ports/repositories"
	portssvc "github.com/tokopintar/tokokas/internal/core/ports/services"
	"github.com/tokopintar/tokokas/internal/middleware"
	"github.com/tokopintar/tokokas/internal/utils/accounting"
)

// reportingService derives the ledger and trial balance reports. Each report
// reads the full journal snapshot on demand; there is no caching and no
// incremental update.
type reportingService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		journalRepo: journalRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Ledger builds the per-account ledger from the current journal snapshot.
// An account nothing has touched yields an empty row slice; the display layer
// renders that as "no transactions".
func (s *reportingService) Ledger(ctx context.Context, account string) ([]domain.LedgerRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		logger.Error("Failed to read journal for ledger report", slog.String("account", account), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journal for ledger: %w", err)
	}

	rows := accounting.BuildLedger(account, entries)

	logger.Info("Ledger report generated", slog.String("account", account), slog.Int("row_count", len(rows)))
	return rows, nil
}

// TrialBalance aggregates the whole journal into the trial balance report.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		logger.Error("Failed to read journal for trial balance report", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journal for trial balance: %w", err)
	}

	tb := accounting.BuildTrialBalance(entries)
	if !tb.Balanced {
		// Unreachable under the append contract; kept as a defensive check.
		logger.Warn("Trial balance does not balance", slog.String("difference", tb.Difference.String()))
	}

	logger.Info("Trial balance report generated", slog.Int("row_count", len(tb.Rows)))
	return &tb, nil
}
