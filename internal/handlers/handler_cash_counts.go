package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/SscSPs/grouphome_ledger/internal/dto"
	"github.com/SscSPs/grouphome_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashCountHandler handles HTTP requests related to reconciliation counts.
type cashCountHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func registerCashCountRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := &cashCountHandler{reconciliationService: reconciliationService}

	counts := rg.Group("/cash-counts")
	{
		counts.GET("", h.listHomeCounts)
		counts.POST("", h.recordCount)
	}
}

// recordCount compares a counted balance with the ledger and stores the result.
func (h *cashCountHandler) recordCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordCashCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.Int64("resident_id", req.ResidentID))
	count, err := h.reconciliationService.RecordCount(c.Request.Context(), req.ResidentID, *req.BalanceCents, domain.StaffID(*req.StaffID))
	if err != nil {
		respondError(c, logger, err, "Failed to record cash count")
		return
	}

	logger.Info("Cash count recorded", slog.Int64("cash_count_id", count.ID), slog.Bool("is_mismatch", count.IsMismatch))
	c.JSON(http.StatusCreated, dto.ToCashCountResponse(*count))
}

// listHomeCounts lists a group home's counts for one reporting month.
func (h *cashCountHandler) listHomeCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCashCountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	views, err := h.reconciliationService.ListHomeCounts(c.Request.Context(), params.HomeID, params.Period)
	if err != nil {
		respondError(c, logger.With(slog.Int64("home_id", params.HomeID)), err, "Failed to list cash counts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashCountsResponse(views))
}
