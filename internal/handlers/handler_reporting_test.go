package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tokopintar/tokokas/internal/core/domain"
	"github.com/tokopintar/tokokas/internal/dto"
)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	mockJournal   *MockJournalService
	mockInventory *MockInventoryService
	mockReporting *MockReportingService
	router        *gin.Engine
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	suite.mockJournal = new(MockJournalService)
	suite.mockInventory = new(MockInventoryService)
	suite.mockReporting = new(MockReportingService)
	suite.router = setupTestRouter(suite.T(), suite.mockJournal, suite.mockInventory, suite.mockReporting)
}

func (suite *ReportingHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) sampleLedgerRows() []domain.LedgerRow {
	return []domain.LedgerRow{
		{
			EntryDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "Penjualan tunai",
			Reference:   "JU-1",
			Debit:       decimal.NewFromInt(200000),
			Credit:      decimal.Zero,
			Balance:     decimal.NewFromInt(200000),
		},
		{
			EntryDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Description: "Sewa kios",
			Reference:   "JU-2",
			Debit:       decimal.Zero,
			Credit:      decimal.NewFromInt(50000),
			Balance:     decimal.NewFromInt(150000),
		},
	}
}

func (suite *ReportingHandlerTestSuite) sampleTrialBalance() *domain.TrialBalance {
	return &domain.TrialBalance{
		Rows: []domain.TrialBalanceRow{
			{Account: "Beban Sewa", Debit: decimal.NewFromInt(50000), Credit: decimal.Zero},
			{Account: "Kas", Debit: decimal.NewFromInt(200000), Credit: decimal.NewFromInt(50000)},
			{Account: "Pendapatan", Debit: decimal.Zero, Credit: decimal.NewFromInt(200000)},
		},
		TotalDebit:  decimal.NewFromInt(250000),
		TotalCredit: decimal.NewFromInt(250000),
		Difference:  decimal.Zero,
		Balanced:    true,
	}
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestGetLedger_OK() {
	suite.mockReporting.On("Ledger", mock.Anything, "Kas").Return(suite.sampleLedgerRows(), nil).Once()

	w := suite.get("/api/v1/reports/ledger/Kas")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Kas", resp.Account)
	suite.Require().Len(resp.Rows, 2)
	suite.Equal("Rp. 200.000", resp.Rows[0].DebitDisplay)
	suite.Equal("Rp. 150.000", resp.Rows[1].BalanceDisplay)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetLedger_UntouchedAccount() {
	suite.mockReporting.On("Ledger", mock.Anything, "Persediaan").Return([]domain.LedgerRow{}, nil).Once()

	w := suite.get("/api/v1/reports/ledger/Persediaan")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Persediaan", resp.Account)
	suite.Empty(resp.Rows)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetLedger_ServiceFailure() {
	suite.mockReporting.On("Ledger", mock.Anything, "Kas").Return(nil, assert.AnError).Once()

	w := suite.get("/api/v1/reports/ledger/Kas")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestExportLedger_CSV() {
	suite.mockReporting.On("Ledger", mock.Anything, "Kas").Return(suite.sampleLedgerRows(), nil).Once()

	w := suite.get("/api/v1/reports/ledger/Kas/export")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "buku_besar.csv")
	suite.Contains(w.Body.String(), "Tanggal,Keterangan,Ref,Debit,Kredit,Saldo")
	suite.Contains(w.Body.String(), "2024-01-05,Penjualan tunai,JU-1,Rp. 200.000,Rp. 0,Rp. 200.000")
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetTrialBalance_OK() {
	suite.mockReporting.On("TrialBalance", mock.Anything).Return(suite.sampleTrialBalance(), nil).Once()

	w := suite.get("/api/v1/reports/trial-balance")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Rows, 3)
	suite.Equal("Beban Sewa", resp.Rows[0].Account)
	suite.Equal("Rp. 200.000", resp.Rows[1].DebitDisplay)
	suite.True(resp.Totals.Debit.Equal(decimal.NewFromInt(250000)))
	suite.True(resp.Totals.Credit.Equal(decimal.NewFromInt(250000)))
	suite.True(resp.Balanced)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetTrialBalance_ServiceFailure() {
	suite.mockReporting.On("TrialBalance", mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.get("/api/v1/reports/trial-balance")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestExportTrialBalance_CSV() {
	suite.mockReporting.On("TrialBalance", mock.Anything).Return(suite.sampleTrialBalance(), nil).Once()

	w := suite.get("/api/v1/reports/trial-balance/export")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "neraca_saldo.csv")
	suite.Contains(w.Body.String(), "Akun,Debit,Kredit")
	suite.Contains(w.Body.String(), "Kas,Rp. 200.000,Rp. 50.000")
	suite.Contains(w.Body.String(), "TOTAL,Rp. 250.000,Rp. 250.000")
	suite.mockReporting.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
