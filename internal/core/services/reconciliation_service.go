package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
)

type reconciliationService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	directoryRepo portsrepo.DirectoryRepositoryFacade
}

// NewReconciliationService creates the cash count service.
func NewReconciliationService(ledgerRepo portsrepo.LedgerRepositoryFacade, directoryRepo portsrepo.DirectoryRepositoryFacade, opts ...ServiceOption) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		BaseService:   newBaseService(opts),
		ledgerRepo:    ledgerRepo,
		directoryRepo: directoryRepo,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// ErrMsgNegativeCount is the rejection message for a count below zero. Counted cash cannot be
// negative, so the ledger refuses such counts even though any integer is well formed.
const ErrMsgNegativeCount = "balance_cents must not be negative: ledger policy rejects counts below zero"

// RecordCount reads the running balance and stores the count under the same resident lock,
// so the diff is computed against the balance that is current when the count commits.
func (s *reconciliationService) RecordCount(ctx context.Context, residentID, balanceCents int64, staffID domain.StaffID) (*domain.CashCount, error) {
	if residentID <= 0 {
		return nil, apperrors.NewValidationError("resident_id must be provided")
	}
	if balanceCents < 0 {
		return nil, apperrors.NewValidationError(ErrMsgNegativeCount)
	}
	if staffID < 0 {
		return nil, apperrors.NewValidationError("staff_id must not be negative")
	}

	var saved domain.CashCount
	err := s.ledgerRepo.WithinResidentTx(ctx, residentID, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		running, err := store.SumTransactions(ctx, residentID, nil)
		if err != nil {
			return err
		}
		saved, err = store.InsertCashCount(ctx, domain.NewCashCount(residentID, balanceCents, running, staffID, s.Now()))
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record cash count", slog.Int64("resident_id", residentID))
		return nil, err
	}

	if saved.IsMismatch {
		s.LogWarn(ctx, "Cash count mismatch",
			slog.Int64("resident_id", residentID),
			slog.Int64("diff_cents", saved.DiffCents),
			slog.Int64("expected_cents", saved.ExpectedBalanceCents()))
	} else {
		s.LogInfo(ctx, "Cash count recorded", slog.Int64("resident_id", residentID), slog.Int64("count_id", saved.ID))
	}
	return &saved, nil
}

func (s *reconciliationService) ListHomeCounts(ctx context.Context, homeID int64, periodToken string) ([]domain.CashCountView, error) {
	if homeID <= 0 {
		return nil, apperrors.NewValidationError("homeId must be provided")
	}
	period, err := domain.ResolvePeriod(periodToken, s.Now(), s.Location())
	if err != nil {
		return nil, err
	}

	residents, err := s.directoryRepo.ListResidentsByHome(ctx, homeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list residents of home", slog.Int64("home_id", homeID))
		return nil, err
	}
	views := []domain.CashCountView{}
	if len(residents) == 0 {
		return views, nil
	}

	byID := make(map[int64]domain.Resident, len(residents))
	ids := make([]int64, 0, len(residents))
	for _, r := range residents {
		byID[r.ID] = r
		ids = append(ids, r.ID)
	}

	from, to := period.Bounds(s.Location())
	counts, err := s.ledgerRepo.ListCashCountsBetween(ctx, ids, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash counts", slog.Int64("home_id", homeID))
		return nil, err
	}

	staffIDs := make([]domain.StaffID, 0, len(counts))
	for _, c := range counts {
		staffIDs = append(staffIDs, c.StaffID)
	}
	names := resolveStaffNames(ctx, &s.BaseService, s.directoryRepo, staffIDs)

	for _, c := range counts {
		r := byID[c.ResidentID]
		views = append(views, domain.CashCountView{
			CashCount:         c,
			ResidentFirstName: r.FirstName,
			ResidentLastName:  r.LastName,
			StaffName:         names.nameOf(c.StaffID),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.ResidentLastName != b.ResidentLastName {
			return a.ResidentLastName < b.ResidentLastName
		}
		if !a.CountedAt.Equal(b.CountedAt) {
			return a.CountedAt.After(b.CountedAt)
		}
		return a.ID > b.ID
	})
	return views, nil
}
