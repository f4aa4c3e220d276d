package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/tokopintar/tokokas/internal/core/domain"
	portssvc "github.com/tokopintar/tokokas/internal/core/ports/services"
	"github.com/tokopintar/tokokas/internal/core/services"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJournalRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) sampleEntries() []domain.JournalEntry {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return []domain.JournalEntry{
		{EntryID: 1, EntryDate: day(5), DebitAccount: "Kas", CreditAccount: "Pendapatan", Amount: decimal.NewFromInt(200000), Description: "Penjualan tunai"},
		{EntryID: 2, EntryDate: day(10), DebitAccount: "Beban Sewa", CreditAccount: "Kas", Amount: decimal.NewFromInt(50000), Description: "Sewa kios"},
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestLedger_RunningBalance() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx).Return(suite.sampleEntries(), nil).Once()

	rows, err := suite.service.Ledger(ctx, "Kas")

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal("JU-1", rows[0].Reference)
	suite.Equal("Penjualan tunai", rows[0].Description)
	suite.True(rows[0].Debit.Equal(decimal.NewFromInt(200000)))
	suite.True(rows[0].Balance.Equal(decimal.NewFromInt(200000)))

	suite.Equal("JU-2", rows[1].Reference)
	suite.True(rows[1].Credit.Equal(decimal.NewFromInt(50000)))
	suite.True(rows[1].Balance.Equal(decimal.NewFromInt(150000)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestLedger_UnknownAccountIsEmptyReport() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx).Return(suite.sampleEntries(), nil).Once()

	rows, err := suite.service.Ledger(ctx, "Persediaan")

	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestLedger_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockRepo.On("ListEntries", ctx).Return(nil, expectedErr).Once()

	rows, err := suite.service.Ledger(ctx, "Kas")

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx).Return(suite.sampleEntries(), nil).Once()

	tb, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(tb)
	suite.Require().Len(tb.Rows, 3)

	suite.Equal("Beban Sewa", tb.Rows[0].Account)
	suite.True(tb.Rows[0].Debit.Equal(decimal.NewFromInt(50000)))

	suite.Equal("Kas", tb.Rows[1].Account)
	suite.True(tb.Rows[1].Debit.Equal(decimal.NewFromInt(200000)))
	suite.True(tb.Rows[1].Credit.Equal(decimal.NewFromInt(50000)))

	suite.Equal("Pendapatan", tb.Rows[2].Account)
	suite.True(tb.Rows[2].Credit.Equal(decimal.NewFromInt(200000)))

	suite.True(tb.TotalDebit.Equal(decimal.NewFromInt(250000)))
	suite.True(tb.TotalCredit.Equal(decimal.NewFromInt(250000)))
	suite.True(tb.Balanced)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_EmptyJournal() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx).Return([]domain.JournalEntry{}, nil).Once()

	tb, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Empty(tb.Rows)
	suite.True(tb.TotalDebit.IsZero())
	suite.True(tb.TotalCredit.IsZero())
	suite.True(tb.Balanced)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockRepo.On("ListEntries", ctx).Return(nil, expectedErr).Once()

	tb, err := suite.service.TrialBalance(ctx)

	suite.Require().Error(err)
	suite.Nil(tb)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
