package handlers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tokopintar/tokokas/internal/apperrors"
	portssvc "github.com/tokopintar/tokokas/internal/core/ports/services"
	"github.com/tokopintar/tokokas/internal/dto"
	"github.com/tokopintar/tokokas/internal/middleware"
	"github.com/tokopintar/tokokas/internal/utils"
)

// journalHandler handles HTTP requests related to the general journal.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// registerJournalRoutes registers journal specific routes
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalSvcFacade, writeLimit gin.HandlerFunc) {
	h := newJournalHandler(journalService)

	journal := group.Group("/journal")
	{
		journal.POST("", writeLimit, h.appendEntry)
		journal.GET("", h.listEntries)
		journal.GET("/export", h.exportEntries)
	}
}

// bindingErrorDetail renders a gin binding failure as a short field-level
// message instead of validator's full struct paths.
func bindingErrorDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return "field '" + fe.Field() + "' is required"
		case "datetime":
			return "field '" + fe.Field() + "' must be a date in YYYY-MM-DD format"
		case "gte":
			return "field '" + fe.Field() + "' must be at least " + fe.Param()
		default:
			return "field '" + fe.Field() + "' is invalid"
		}
	}
	return "invalid request format"
}

func (h *journalHandler) appendEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateJournalEntryRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for appendEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorDetail(err)})
		return
	}

	entry, err := h.journalService.AppendEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error appending journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to append journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record journal entry"})
		}
		return
	}

	logger.Info("Journal entry recorded", slog.Int64("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.journalService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{Entries: dto.ToJournalEntryResponses(entries)})
}

func (h *journalHandler) exportEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.journalService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export journal"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="jurnal_umum.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Tanggal", "Ref", "Akun Debit", "Akun Kredit", "Jumlah", "Keterangan"})
	for _, e := range entries {
		_ = w.Write([]string{
			e.EntryDate.Format("2006-01-02"),
			e.Reference(),
			e.DebitAccount,
			e.CreditAccount,
			utils.FormatRupiah(e.Amount),
			e.Description,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to write journal CSV", slog.String("error", err.Error()))
	}
}
