package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
)

// txStore stages writes of one resident transaction. Reads see committed rows plus
// whatever has been staged so far.
type txStore struct {
	parent     *Store
	txns       []domain.Transaction
	allowances []domain.Allowance
	counts     []domain.CashCount
}

var _ portsrepo.LedgerTxStore = (*txStore)(nil)

func (t *txStore) InsertTransaction(_ context.Context, txn domain.Transaction) (domain.Transaction, error) {
	if err := txn.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	if txn.AllowanceID != nil {
		if _, err := t.findAllowance(*txn.AllowanceID); err != nil {
			return domain.Transaction{}, err
		}
	}
	txn.ID = t.parent.nextID("cash_transactions")
	t.txns = append(t.txns, txn)
	return txn, nil
}

func (t *txStore) SumTransactions(_ context.Context, residentID int64, asOf *time.Time) (int64, error) {
	committed, _, _ := t.parent.snapshot()
	return sumFor(committed, residentID, asOf) + sumFor(t.txns, residentID, asOf), nil
}

func (t *txStore) InsertAllowance(_ context.Context, a domain.Allowance) (domain.Allowance, error) {
	if err := a.Validate(); err != nil {
		return domain.Allowance{}, err
	}
	for _, existing := range t.allAllowances() {
		if existing.ResidentID == a.ResidentID && existing.PeriodStart.Equal(a.PeriodStart) {
			return domain.Allowance{}, fmt.Errorf("allowance for resident %d starting %s: %w",
				a.ResidentID, a.PeriodStart.Format(domain.DateLayout), apperrors.ErrDuplicate)
		}
	}
	a.ID = t.parent.nextID("cash_allowances")
	t.allowances = append(t.allowances, a)
	return a, nil
}

func (t *txStore) FindOpenAllowance(_ context.Context, residentID int64, day time.Time) (*domain.Allowance, error) {
	return domain.LatestOpen(allowancesFor(t.allAllowances(), residentID), day), nil
}

func (t *txStore) FindAllowanceByID(_ context.Context, allowanceID int64) (*domain.Allowance, error) {
	return t.findAllowance(allowanceID)
}

func (t *txStore) FindTransactionByID(_ context.Context, transactionID int64) (*domain.Transaction, error) {
	committed, _, _ := t.parent.snapshot()
	for _, txn := range append(committed, t.txns...) {
		if txn.ID == transactionID {
			found := txn
			return &found, nil
		}
	}
	return nil, fmt.Errorf("transaction %d: %w", transactionID, apperrors.ErrNotFound)
}

func (t *txStore) InsertCashCount(_ context.Context, c domain.CashCount) (domain.CashCount, error) {
	c.ID = t.parent.nextID("cash_counts")
	t.counts = append(t.counts, c)
	return c, nil
}

func (t *txStore) allAllowances() []domain.Allowance {
	_, committed, _ := t.parent.snapshot()
	return append(committed, t.allowances...)
}

func (t *txStore) findAllowance(id int64) (*domain.Allowance, error) {
	for _, a := range t.allAllowances() {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("allowance %d: %w", id, apperrors.ErrNotFound)
}
