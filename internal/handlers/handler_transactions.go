package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/SscSPs/grouphome_ledger/internal/dto"
	"github.com/SscSPs/grouphome_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &transactionHandler{ledgerService: ledgerService}
	rg.POST("/transactions", h.recordTransaction)
}

// recordTransaction appends a cash movement linked to an allowance. Without allowance_id the
// allowance open today is used.
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.Int64("resident_id", req.ResidentID))
	txn, err := h.ledgerService.RecordCashMovement(c.Request.Context(), req.ToNewTransaction())
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.Int64("transaction_id", txn.ID), slog.Int64("amount_cents", txn.AmountCents))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}
