package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tokopintar/tokokas/internal/core/ports/services"
	"github.com/tokopintar/tokokas/internal/dto"
	"github.com/tokopintar/tokokas/internal/middleware"
	"github.com/tokopintar/tokokas/internal/utils"
)

// reportingHandler handles HTTP requests related to the derived reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to the ledger and trial balance reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/ledger/:account", h.getLedger)
		reports.GET("/ledger/:account/export", h.exportLedger)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/trial-balance/export", h.exportTrialBalance)
	}
}

func (h *reportingHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account := c.Param("account")
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account name required in path"})
		return
	}

	rows, err := h.reportingService.Ledger(c.Request.Context(), account)
	if err != nil {
		logger.Error("Failed to generate ledger report", slog.String("error", err.Error()), slog.String("account", account))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate ledger report"})
		return
	}

	// An untouched account is an empty report, not an error.
	c.JSON(http.StatusOK, dto.ToLedgerResponse(account, rows))
}

func (h *reportingHandler) exportLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account := c.Param("account")
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account name required in path"})
		return
	}

	rows, err := h.reportingService.Ledger(c.Request.Context(), account)
	if err != nil {
		logger.Error("Failed to export ledger report", slog.String("error", err.Error()), slog.String("account", account))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export ledger report"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="buku_besar.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Tanggal", "Keterangan", "Ref", "Debit", "Kredit", "Saldo"})
	for _, r := range rows {
		_ = w.Write([]string{
			r.EntryDate.Format("2006-01-02"),
			r.Description,
			r.Reference,
			utils.FormatRupiah(r.Debit),
			utils.FormatRupiah(r.Credit),
			utils.FormatRupiah(r.Balance),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to write ledger CSV", slog.String("error", err.Error()))
	}
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tb, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate trial balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

func (h *reportingHandler) exportTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tb, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export trial balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export trial balance report"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="neraca_saldo.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Akun", "Debit", "Kredit"})
	for _, r := range tb.Rows {
		_ = w.Write([]string{
			r.Account,
			utils.FormatRupiah(r.Debit),
			utils.FormatRupiah(r.Credit),
		})
	}
	_ = w.Write([]string{"TOTAL", utils.FormatRupiah(tb.TotalDebit), utils.FormatRupiah(tb.TotalCredit)})
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to write trial balance CSV", slog.String("error", err.Error()))
	}
}
