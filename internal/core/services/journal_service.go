package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tokopintar/tokokas/internal/apperrors"
	"github.com/tokopintar/tokokas/internal/core/domain"
	portsrepo "github.com/tokopintar/tokokas/internal/core/ports/repositories"
	portssvc "github.com/tokopintar/tokokas/internal/core/ports/services"
	"github.com/tokopintar/tokokas/internal/dto"
	"github.com/tokopintar/tokokas/internal/middleware"
)

const entryDateLayout = "2006-01-02"

// journalService provides the general journal operations.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// AppendEntry validates and persists a new journal entry. Entries are
// immutable once written. An entry whose debit and credit account are the
// same string is accepted: the journal records what the caller submitted,
// and the entry nets to zero in every derived balance.
func (s *journalService) AppendEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entryDate, err := time.Parse(entryDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q is not a valid calendar date (want YYYY-MM-DD)", apperrors.ErrValidation, req.Date)
	}

	debitAccount := strings.TrimSpace(req.DebitAccount)
	creditAccount := strings.TrimSpace(req.CreditAccount)
	if debitAccount == "" {
		return nil, fmt.Errorf("%w: debit account must not be empty", apperrors.ErrValidation)
	}
	if creditAccount == "" {
		return nil, fmt.Errorf("%w: credit account must not be empty", apperrors.ErrValidation)
	}

	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative, got %s", apperrors.ErrValidation, req.Amount.String())
	}

	if debitAccount == creditAccount {
		// Accepted quirk: the entry contributes equal debit and credit rows
		// to the same account.
		logger.Debug("Journal entry debits and credits the same account", slog.String("account", debitAccount))
	}

	entry := domain.JournalEntry{
		EntryDate:     entryDate,
		DebitAccount:  debitAccount,
		CreditAccount: creditAccount,
		Amount:        req.Amount,
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
	}

	entryID, err := s.journalRepo.SaveEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	entry.EntryID = entryID

	logger.Info("Journal entry appended", slog.Int64("entry_id", entryID), slog.String("debit_account", debitAccount), slog.String("credit_account", creditAccount))
	return &entry, nil
}

// ListEntries returns the full journal snapshot ordered by (date, id).
func (s *journalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	logger.Debug("Journal entries listed", slog.Int("count", len(entries)))
	return entries, nil
}
