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
	"github.com/SscSPs/grouphome_ledger/internal/utils/pagination"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates the append-only ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, opts ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: newBaseService(opts),
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RecordTransaction(ctx context.Context, req portssvc.NewTransaction) (*domain.Transaction, error) {
	return s.record(ctx, req, false)
}

func (s *ledgerService) RecordCashMovement(ctx context.Context, req portssvc.NewTransaction) (*domain.Transaction, error) {
	return s.record(ctx, req, true)
}

// record appends one row under the resident lock. When requireAllowance is set the row is
// always linked: an explicit allowance must belong to the resident, otherwise the open one
// is resolved inside the same transaction.
func (s *ledgerService) record(ctx context.Context, req portssvc.NewTransaction, requireAllowance bool) (*domain.Transaction, error) {
	txn := domain.Transaction{
		ResidentID:  req.ResidentID,
		AmountCents: req.AmountCents,
		Reason:      req.Reason,
		EnteredBy:   req.EnteredBy,
		AllowanceID: req.AllowanceID,
		CreatedAt:   s.Now(),
	}
	if err := txn.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected transaction", slog.Int64("resident_id", req.ResidentID), slog.String("reason", err.Error()))
		return nil, err
	}

	var created domain.Transaction
	residentLocked := false
	err := s.ledgerRepo.WithinResidentTx(ctx, req.ResidentID, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		residentLocked = true

		if txn.AllowanceID != nil {
			allowance, err := store.FindAllowanceByID(ctx, *txn.AllowanceID)
			if err != nil {
				return err
			}
			if allowance.ResidentID != txn.ResidentID {
				return apperrors.NewNotFoundError(fmt.Sprintf("allowance %d not found for resident %d", *txn.AllowanceID, txn.ResidentID))
			}
		} else if requireAllowance {
			open, err := store.FindOpenAllowance(ctx, txn.ResidentID, s.Today())
			if err != nil {
				return err
			}
			if open == nil {
				return apperrors.NewConflictError(fmt.Sprintf("resident %d has no open allowance", txn.ResidentID))
			}
			txn.AllowanceID = &open.ID
		}

		var err error
		created, err = store.InsertTransaction(ctx, txn)
		return err
	})
	if err != nil {
		if !residentLocked && errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("resident %d does not exist", req.ResidentID))
		}
		if errors.Is(err, apperrors.ErrNotFound) && txn.AllowanceID != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				err = apperrors.NewNotFoundError(fmt.Sprintf("allowance %d not found", *txn.AllowanceID))
			}
		}
		s.LogError(ctx, err, "Failed to record transaction", slog.Int64("resident_id", req.ResidentID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("transaction_id", created.ID),
		slog.Int64("resident_id", created.ResidentID),
		slog.Int64("amount_cents", created.AmountCents))
	return &created, nil
}

// CorrectTransaction reverses a row by appending its negation, linked to the same allowance.
func (s *ledgerService) CorrectTransaction(ctx context.Context, residentID, transactionID int64, enteredBy domain.StaffID) (*domain.Transaction, error) {
	if residentID <= 0 {
		return nil, apperrors.NewValidationError("resident_id must be provided")
	}
	if transactionID <= 0 {
		return nil, apperrors.NewValidationError("transaction id must be provided")
	}
	if enteredBy < 0 {
		return nil, apperrors.NewValidationError("entered_by must be a valid staff id")
	}

	var original, created domain.Transaction
	err := s.ledgerRepo.WithinResidentTx(ctx, residentID, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		found, err := store.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if found.ResidentID != residentID {
			return apperrors.NewNotFoundError(fmt.Sprintf("transaction %d not found for resident %d", transactionID, residentID))
		}
		original = *found
		created, err = store.InsertTransaction(ctx, domain.CorrectionOf(original, enteredBy, s.Now()))
		return err
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, apperrors.ErrNotFound) && !errors.As(err, &appErr) {
			err = apperrors.NewNotFoundError(fmt.Sprintf("transaction %d not found", transactionID))
		}
		s.LogError(ctx, err, "Failed to correct transaction",
			slog.Int64("resident_id", residentID),
			slog.Int64("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction corrected",
		slog.Int64("transaction_id", created.ID),
		slog.Int64("corrects_transaction_id", original.ID),
		slog.Bool("reverses_credit", original.IsCredit()),
		slog.Int64("amount_cents", created.AmountCents))
	return &created, nil
}

func (s *ledgerService) RunningBalance(ctx context.Context, residentID int64, asOf *time.Time) (int64, error) {
	if residentID <= 0 {
		return 0, apperrors.NewValidationError("resident_id must be provided")
	}
	cutoff := s.Now()
	if asOf != nil {
		cutoff = *asOf
	}
	balance, err := s.ledgerRepo.SumTransactions(ctx, residentID, &cutoff)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute running balance", slog.Int64("resident_id", residentID))
		return 0, err
	}
	return balance, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, residentID int64, limit int, nextToken *string) (*domain.TransactionPage, error) {
	if residentID <= 0 {
		return nil, apperrors.NewValidationError("resident_id must be provided")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		var err error
		cursor, err = pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	// One extra row tells whether another page exists.
	rows, err := s.ledgerRepo.ListTransactionsPage(ctx, residentID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int64("resident_id", residentID))
		return nil, err
	}

	page := &domain.TransactionPage{Transactions: rows}
	if len(rows) > limit {
		page.Transactions = rows[:limit]
		last := page.Transactions[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ID)
		page.NextToken = &token
	}
	return page, nil
}
