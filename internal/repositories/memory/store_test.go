package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/grouphome_ledger/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newSeeded() *Store {
	s := New()
	s.AddResident(domain.Resident{ID: 9, FirstName: "Ada", LastName: "Moss"})
	return s
}

func insert(t *testing.T, s *Store, residentID, amount int64, at time.Time) domain.Transaction {
	t.Helper()
	var out domain.Transaction
	err := s.WithinResidentTx(context.Background(), residentID, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		var err error
		out, err = store.InsertTransaction(ctx, domain.Transaction{ResidentID: residentID, AmountCents: amount, EnteredBy: 1, CreatedAt: at})
		return err
	})
	require.NoError(t, err)
	return out
}

func TestWithinResidentTx_UnknownResident(t *testing.T) {
	s := New()
	called := false
	err := s.WithinResidentTx(context.Background(), 404, func(context.Context, portsrepo.LedgerTxStore) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.False(t, called)
}

func TestWithinResidentTx_RollsBackOnError(t *testing.T) {
	s := newSeeded()
	boom := errors.New("boom")

	err := s.WithinResidentTx(context.Background(), 9, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		a, err := store.InsertAllowance(ctx, domain.Allowance{ResidentID: 9, PeriodStart: base, AmountCents: 100})
		require.NoError(t, err)
		_, err = store.InsertTransaction(ctx, a.CreditTransaction(domain.SystemAttribution))
		require.NoError(t, err)

		sum, err := store.SumTransactions(ctx, 9, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(100), sum, "staged rows are visible inside the transaction")
		return boom
	})

	assert.ErrorIs(t, err, boom)
	txns, allowances, counts := s.Counts()
	assert.Zero(t, txns)
	assert.Zero(t, allowances)
	assert.Zero(t, counts)
}

func TestInsertAllowance_Duplicate(t *testing.T) {
	s := newSeeded()
	open := func() error {
		return s.WithinResidentTx(context.Background(), 9, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
			_, err := store.InsertAllowance(ctx, domain.Allowance{ResidentID: 9, PeriodStart: base, AmountCents: 100})
			return err
		})
	}
	require.NoError(t, open())
	assert.ErrorIs(t, open(), apperrors.ErrDuplicate)
}

func TestInsertTransaction_UnknownAllowance(t *testing.T) {
	s := newSeeded()
	missing := int64(77)
	err := s.WithinResidentTx(context.Background(), 9, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		_, err := store.InsertTransaction(ctx, domain.Transaction{ResidentID: 9, AmountCents: 5, EnteredBy: 1, AllowanceID: &missing})
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSumTransactions_AsOf(t *testing.T) {
	s := newSeeded()
	insert(t, s, 9, 100, base)
	insert(t, s, 9, 250, base.Add(time.Hour))
	insert(t, s, 9, 1, base.Add(2*time.Hour))

	sum, err := s.SumTransactions(context.Background(), 9, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(351), sum)

	cut := base.Add(time.Hour)
	sum, err = s.SumTransactions(context.Background(), 9, &cut)
	require.NoError(t, err)
	assert.Equal(t, int64(350), sum, "rows at exactly asOf are included")

	sum, err = s.SumTransactions(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestListTransactions(t *testing.T) {
	s := newSeeded()
	first := insert(t, s, 9, 100, base)
	second := insert(t, s, 9, -40, base)
	third := insert(t, s, 9, 7, base.Add(time.Hour))

	rows, err := s.ListTransactionsBetween(context.Background(), 9, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []int64{second.ID, first.ID}, []int64{rows[0].ID, rows[1].ID})

	page, err := s.ListTransactionsPage(context.Background(), 9, 2, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, third.ID, page[0].ID)
	assert.Equal(t, second.ID, page[1].ID)

	next, err := s.ListTransactionsPage(context.Background(), 9, 2, &pagination.Cursor{CreatedAt: page[1].CreatedAt, ID: page[1].ID})
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, first.ID, next[0].ID)
}

func TestFindLatestCashCount(t *testing.T) {
	s := newSeeded()
	latest, err := s.FindLatestCashCount(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, latest)

	for _, at := range []time.Time{base, base.Add(2 * time.Hour), base.Add(time.Hour)} {
		at := at
		require.NoError(t, s.WithinResidentTx(context.Background(), 9, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
			_, err := store.InsertCashCount(ctx, domain.NewCashCount(9, 0, 0, 1, at))
			return err
		}))
	}

	latest, err = s.FindLatestCashCount(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, base.Add(2*time.Hour), latest.CountedAt)
}

func TestWithinResidentTx_SerializesSameResident(t *testing.T) {
	s := newSeeded()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithinResidentTx(context.Background(), 9, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
				running, err := store.SumTransactions(ctx, 9, nil)
				if err != nil {
					return err
				}
				if _, err := store.InsertTransaction(ctx, domain.Transaction{ResidentID: 9, AmountCents: 1, EnteredBy: 1, CreatedAt: base}); err != nil {
					return err
				}
				_, err = store.InsertCashCount(ctx, domain.NewCashCount(9, running+1, running+1, 1, base))
				return err
			})
		}()
	}
	wg.Wait()

	txns, _, counts := s.Counts()
	assert.Equal(t, 50, txns)
	assert.Equal(t, 50, counts)
	for _, c := range s.counts {
		assert.False(t, c.IsMismatch, "every count saw a consistent balance")
	}
}

func TestDirectory(t *testing.T) {
	s := New()
	home := int64(3)
	s.AddResident(domain.Resident{ID: 1, FirstName: "Zed", LastName: "Young", GroupHomeID: &home})
	s.AddResident(domain.Resident{ID: 2, FirstName: "Amy", LastName: "Adams", GroupHomeID: &home})
	s.AddResident(domain.Resident{ID: 3, FirstName: "Out", LastName: "Side"})
	s.AddStaff(domain.Staff{ID: 4, FirstName: "Sam", LastName: "Lee"})

	residents, err := s.ListResidentsByHome(context.Background(), home)
	require.NoError(t, err)
	require.Len(t, residents, 2)
	assert.Equal(t, "Adams", residents[0].LastName)

	name := "Zack"
	updated, err := s.UpdateResident(context.Background(), 1, domain.ResidentUpdate{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Zack", updated.FirstName)
	assert.Equal(t, "Young", updated.LastName)

	_, err = s.FindResidentByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	staff, err := s.FindStaffByIDs(context.Background(), []domain.StaffID{4, 5})
	require.NoError(t, err)
	assert.Len(t, staff, 1)
	assert.Equal(t, "Sam Lee", staff[4].FullName())
}
