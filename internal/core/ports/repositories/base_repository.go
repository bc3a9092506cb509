package repositories

import (
	"context"
)

// ResidentTxFunc is the body of a resident-scoped storage transaction. Every write it makes
// through store commits together or not at all.
type ResidentTxFunc func(ctx context.Context, store LedgerTxStore) error

// LedgerUnitOfWork defines how mutating ledger operations are scoped.
type LedgerUnitOfWork interface {
	// WithinResidentTx opens one storage transaction, takes the per-resident lock and runs fn.
	// It returns apperrors.ErrNotFound when the resident does not exist. The transaction
	// commits only when fn returns nil; any error rolls back every write made by fn.
	WithinResidentTx(ctx context.Context, residentID int64, fn ResidentTxFunc) error
}
