package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/SscSPs/grouphome_ledger/internal/utils/pagination"
)

// LedgerTxStore holds the ledger primitives available inside a resident transaction.
type LedgerTxStore interface {
	// InsertTransaction appends a ledger row and returns it with its generated id.
	InsertTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error)

	// SumTransactions returns the sum of amount_cents with created_at <= asOf (all rows when asOf is nil).
	SumTransactions(ctx context.Context, residentID int64, asOf *time.Time) (int64, error)

	// InsertAllowance stores an allowance. A second allowance for the same
	// (resident, period_start) fails with apperrors.ErrDuplicate.
	InsertAllowance(ctx context.Context, allowance domain.Allowance) (domain.Allowance, error)

	// FindOpenAllowance returns the allowance open on day, or nil when none is.
	FindOpenAllowance(ctx context.Context, residentID int64, day time.Time) (*domain.Allowance, error)

	// FindAllowanceByID returns apperrors.ErrNotFound when the id is unknown.
	FindAllowanceByID(ctx context.Context, allowanceID int64) (*domain.Allowance, error)

	// FindTransactionByID returns apperrors.ErrNotFound when the id is unknown.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	InsertCashCount(ctx context.Context, count domain.CashCount) (domain.CashCount, error)
}

// LedgerReader defines the lock-free reads used by queries and summaries.
type LedgerReader interface {
	SumTransactions(ctx context.Context, residentID int64, asOf *time.Time) (int64, error)
	FindOpenAllowance(ctx context.Context, residentID int64, day time.Time) (*domain.Allowance, error)

	// ListTransactionsBetween returns rows with from <= created_at < to, newest first.
	ListTransactionsBetween(ctx context.Context, residentID int64, from, to time.Time) ([]domain.Transaction, error)

	// ListTransactionsPage returns up to limit rows newest first, starting after cursor when set.
	ListTransactionsPage(ctx context.Context, residentID int64, limit int, cursor *pagination.Cursor) ([]domain.Transaction, error)

	// FindLatestCashCount returns the most recent count, or nil when the resident has none.
	FindLatestCashCount(ctx context.Context, residentID int64) (*domain.CashCount, error)

	// ListCashCountsBetween returns counts of the given residents with from <= counted_at < to.
	ListCashCountsBetween(ctx context.Context, residentIDs []int64, from, to time.Time) ([]domain.CashCount, error)
}

// LedgerRepositoryFacade combines the reader and the unit of work.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerUnitOfWork
}
