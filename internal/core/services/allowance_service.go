package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
)

type allowanceService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewAllowanceService creates the allowance manager.
func NewAllowanceService(ledgerRepo portsrepo.LedgerRepositoryFacade, opts ...ServiceOption) portssvc.AllowanceSvcFacade {
	return &allowanceService{
		BaseService: newBaseService(opts),
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.AllowanceSvcFacade = (*allowanceService)(nil)

// OpenAllowance inserts the allowance and its credit in one resident transaction, so either
// both rows exist or neither does.
func (s *allowanceService) OpenAllowance(ctx context.Context, req portssvc.NewAllowance) (*domain.Allowance, error) {
	allowance := domain.Allowance{
		ResidentID:  req.ResidentID,
		PeriodStart: domain.DateOf(req.PeriodStart, time.UTC),
		AmountCents: req.AmountCents,
		CreatedAt:   s.Now(),
	}
	if req.PeriodEnd != nil {
		end := domain.DateOf(*req.PeriodEnd, time.UTC)
		allowance.PeriodEnd = &end
	}
	if err := allowance.Validate(); err != nil {
		return nil, err
	}
	if req.AttributedTo < 0 {
		return nil, apperrors.NewValidationError("staff id must not be negative")
	}

	var saved domain.Allowance
	err := s.ledgerRepo.WithinResidentTx(ctx, req.ResidentID, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		var err error
		saved, err = store.InsertAllowance(ctx, allowance)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return apperrors.NewConflictError(fmt.Sprintf("an allowance starting %s already exists for resident %d",
					allowance.PeriodStart.Format(domain.DateLayout), req.ResidentID))
			}
			return err
		}
		_, err = store.InsertTransaction(ctx, saved.CreditTransaction(req.AttributedTo))
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to open allowance",
			slog.Int64("resident_id", req.ResidentID),
			slog.String("period_start", allowance.PeriodStart.Format(domain.DateLayout)))
		return nil, err
	}

	s.LogInfo(ctx, "Allowance opened",
		slog.Int64("allowance_id", saved.ID),
		slog.Int64("resident_id", saved.ResidentID),
		slog.Int64("amount_cents", saved.AmountCents),
		slog.Bool("system_attribution", req.AttributedTo.IsSystem()))
	return &saved, nil
}

func (s *allowanceService) FindOpenAllowance(ctx context.Context, residentID int64, asOf *time.Time) (*domain.Allowance, error) {
	if residentID <= 0 {
		return nil, apperrors.NewValidationError("resident_id must be provided")
	}
	day := s.Today()
	if asOf != nil {
		day = domain.DateOf(*asOf, s.Location())
	}
	open, err := s.ledgerRepo.FindOpenAllowance(ctx, residentID, day)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve open allowance", slog.Int64("resident_id", residentID))
		return nil, err
	}
	return open, nil
}
