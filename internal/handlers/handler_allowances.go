package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/SscSPs/grouphome_ledger/internal/dto"
	"github.com/SscSPs/grouphome_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type allowanceHandler struct {
	allowanceService portssvc.AllowanceSvcFacade
}

func registerAllowanceRoutes(rg *gin.RouterGroup, allowanceService portssvc.AllowanceSvcFacade) {
	h := &allowanceHandler{allowanceService: allowanceService}
	rg.POST("/allowances/:staffId", h.openAllowance)
}

// openAllowance opens an allowance period attributed to the staff member in the path and
// credits the resident with its amount.
func (h *allowanceHandler) openAllowance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rawStaffID := c.Param("staffId")
	staffID, err := strconv.ParseInt(rawStaffID, 10, 64)
	if err != nil || staffID < 0 {
		logger.Warn("Invalid staff id in path", slog.String("staff_id", rawStaffID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staffId"})
		return
	}

	var req dto.OpenAllowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	newAllowance, err := req.ToNewAllowance(domain.StaffID(staffID))
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.Int64("resident_id", req.ResidentID), slog.String("period_start", req.PeriodStart))
	allowance, err := h.allowanceService.OpenAllowance(c.Request.Context(), newAllowance)
	if err != nil {
		// The resident is the only id this route references, and an unknown one is bad input.
		if errors.Is(err, apperrors.ErrNotFound) {
			err = apperrors.NewValidationError(apperrors.PublicMessage(err, "resident not found"))
		}
		respondError(c, logger, err, "Failed to open allowance")
		return
	}

	logger.Info("Allowance opened", slog.Int64("allowance_id", allowance.ID))
	c.JSON(http.StatusCreated, dto.ToAllowanceResponse(*allowance))
}
