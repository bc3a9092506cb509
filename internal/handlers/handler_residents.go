package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/SscSPs/grouphome_ledger/internal/dto"
	"github.com/SscSPs/grouphome_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// residentHandler serves the per-resident read views and the directory patch.
type residentHandler struct {
	residentService       portssvc.ResidentSvcFacade
	financeSummaryService portssvc.FinanceSummarySvcFacade
	ledgerService         portssvc.LedgerSvcFacade
	allowanceService      portssvc.AllowanceSvcFacade
	location              *time.Location
}

func registerResidentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loc *time.Location) {
	h := &residentHandler{
		residentService:       services.Resident,
		financeSummaryService: services.FinanceSummary,
		ledgerService:         services.Ledger,
		allowanceService:      services.Allowance,
		location:              loc,
	}

	residents := rg.Group("/residents/:id")
	{
		residents.GET("", h.getResident)
		residents.PATCH("", h.updateResident)
		residents.GET("/finance-summary", h.getFinanceSummary)
		residents.GET("/finance-summary/pdf", h.exportStatement(portssvc.StatementPDF))
		residents.GET("/finance-summary/xlsx", h.exportStatement(portssvc.StatementXLSX))
		residents.GET("/balance", h.getBalance)
		residents.GET("/open-allowance", h.getOpenAllowance)
		residents.GET("/transactions", h.listTransactions)
		residents.POST("/transactions/:transactionId/correction", h.correctTransaction)
	}
}

func (h *residentHandler) getResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	resident, err := h.residentService.GetResident(c.Request.Context(), residentID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("resident_id", residentID)), err, "Failed to retrieve resident")
		return
	}
	c.JSON(http.StatusOK, dto.ToResidentResponse(*resident))
}

func (h *residentHandler) updateResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.Int64("resident_id", residentID))
	resident, err := h.residentService.UpdateResident(c.Request.Context(), residentID, req.ToResidentUpdate())
	if err != nil {
		respondError(c, logger, err, "Failed to update resident")
		return
	}

	logger.Info("Resident updated")
	c.JSON(http.StatusOK, dto.ToResidentResponse(*resident))
}

func (h *residentHandler) getFinanceSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	summary, err := h.financeSummaryService.GetSummary(c.Request.Context(), residentID, params.Period)
	if err != nil {
		respondError(c, logger.With(slog.Int64("resident_id", residentID)), err, "Failed to build finance summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary))
}

// exportStatement streams the rendered statement as an attachment.
func (h *residentHandler) exportStatement(format portssvc.StatementFormat) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		residentID, ok := pathID(c, logger, "id")
		if !ok {
			return
		}
		var params dto.PeriodParams
		if err := c.ShouldBindQuery(&params); err != nil {
			respondBindError(c, logger, err)
			return
		}

		logger = logger.With(slog.Int64("resident_id", residentID), slog.String("format", string(format)))
		statement, err := h.financeSummaryService.ExportStatement(c.Request.Context(), residentID, params.Period, format)
		if err != nil {
			respondError(c, logger, err, "Failed to render statement")
			return
		}

		logger.Info("Statement exported", slog.Int("bytes", len(statement.Content)))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", statement.FileName))
		c.Data(http.StatusOK, statement.ContentType, statement.Content)
	}
}

func (h *residentHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	asOf, err := parseAsOf(params.AsOf, h.location, endOfDay)
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	balance, err := h.ledgerService.RunningBalance(c.Request.Context(), residentID, asOf)
	if err != nil {
		respondError(c, logger.With(slog.Int64("resident_id", residentID)), err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{ResidentID: residentID, AsOf: asOf, BalanceCents: balance})
}

func (h *residentHandler) getOpenAllowance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	asOf, err := parseAsOf(params.AsOf, h.location, startOfDay)
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	allowance, err := h.allowanceService.FindOpenAllowance(c.Request.Context(), residentID, asOf)
	if err != nil {
		respondError(c, logger.With(slog.Int64("resident_id", residentID)), err, "Failed to find open allowance")
		return
	}
	if allowance == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open allowance"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAllowanceResponse(*allowance))
}

func (h *residentHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), residentID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger.With(slog.Int64("resident_id", residentID)), err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page))
}

// correctTransaction appends the offsetting row for one of the resident's transactions.
func (h *residentHandler) correctTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	transactionID, ok := pathID(c, logger, "transactionId")
	if !ok {
		return
	}
	var req dto.CorrectTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.Int64("resident_id", residentID), slog.Int64("transaction_id", transactionID))
	correction, err := h.ledgerService.CorrectTransaction(c.Request.Context(), residentID, transactionID, domain.StaffID(*req.EnteredBy))
	if err != nil {
		respondError(c, logger, err, "Failed to correct transaction")
		return
	}

	logger.Info("Transaction corrected", slog.Int64("correction_id", correction.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*correction))
}
