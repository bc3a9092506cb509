package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
)

type financeSummaryService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerReader
	directoryRepo portsrepo.DirectoryRepositoryFacade
	renderers     map[portssvc.StatementFormat]portssvc.StatementRenderer
}

// NewFinanceSummaryService creates the summary aggregator. renderers maps each export
// format to the collaborator that produces it.
func NewFinanceSummaryService(
	ledgerRepo portsrepo.LedgerReader,
	directoryRepo portsrepo.DirectoryRepositoryFacade,
	renderers map[portssvc.StatementFormat]portssvc.StatementRenderer,
	opts ...ServiceOption,
) portssvc.FinanceSummarySvcFacade {
	return &financeSummaryService{
		BaseService:   newBaseService(opts),
		ledgerRepo:    ledgerRepo,
		directoryRepo: directoryRepo,
		renderers:     renderers,
	}
}

var _ portssvc.FinanceSummarySvcFacade = (*financeSummaryService)(nil)

// GetSummary reads each part without a lock; a concurrent write may land between reads.
func (s *financeSummaryService) GetSummary(ctx context.Context, residentID int64, periodToken string) (*domain.FinanceSummary, error) {
	period, err := domain.ResolvePeriod(periodToken, s.Now(), s.Location())
	if err != nil {
		return nil, err
	}

	resident, err := s.directoryRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("resident %d not found", residentID))
		}
		s.LogError(ctx, err, "Failed to load resident", slog.Int64("resident_id", residentID))
		return nil, err
	}

	balance, err := s.ledgerRepo.SumTransactions(ctx, residentID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute running balance", slog.Int64("resident_id", residentID))
		return nil, err
	}

	open, err := s.ledgerRepo.FindOpenAllowance(ctx, residentID, s.Today())
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve open allowance", slog.Int64("resident_id", residentID))
		return nil, err
	}

	latest, err := s.ledgerRepo.FindLatestCashCount(ctx, residentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load latest cash count", slog.Int64("resident_id", residentID))
		return nil, err
	}

	from, to := period.Bounds(s.Location())
	txns, err := s.ledgerRepo.ListTransactionsBetween(ctx, residentID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list period transactions", slog.Int64("resident_id", residentID))
		return nil, err
	}

	staffIDs := make([]domain.StaffID, 0, len(txns)+1)
	for _, t := range txns {
		staffIDs = append(staffIDs, t.EnteredBy)
	}
	if latest != nil {
		staffIDs = append(staffIDs, latest.StaffID)
	}
	names := resolveStaffNames(ctx, &s.BaseService, s.directoryRepo, staffIDs)

	summary := &domain.FinanceSummary{
		Resident:            *resident,
		Period:              period,
		RunningBalanceCents: balance,
		OpenAllowance:       open,
		Transactions:        make([]domain.StatementLine, 0, len(txns)),
	}
	if latest != nil {
		summary.LatestCashCount = &domain.LatestCashCount{CashCount: *latest, StaffName: names.nameOf(latest.StaffID)}
	}
	for _, t := range txns {
		summary.Transactions = append(summary.Transactions, domain.StatementLine{Transaction: t, EnteredByName: names.nameOf(t.EnteredBy)})
	}
	return summary, nil
}

// ExportStatement renders the summary. Rendering runs after every read, so a render
// failure never touches ledger state.
func (s *financeSummaryService) ExportStatement(ctx context.Context, residentID int64, periodToken string, format portssvc.StatementFormat) (*domain.Statement, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported statement format %q", format))
	}

	summary, err := s.GetSummary(ctx, residentID, periodToken)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(ctx, *summary)
	if err != nil {
		s.LogError(ctx, err, "Failed to render statement",
			slog.Int64("resident_id", residentID),
			slog.String("format", string(format)))
		return nil, apperrors.NewRenderError("failed to render statement", err)
	}

	return &domain.Statement{
		FileName:    fmt.Sprintf("transactions-%d.%s", residentID, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}
