package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/grouphome_ledger/internal/utils/pagination"
)

// Store is an in-process ledger and directory. Writes made inside WithinResidentTx are
// staged and only become visible when the callback succeeds.
type Store struct {
	mu         sync.Mutex
	sequences  map[string]int64
	residents  map[int64]domain.Resident
	staff      map[domain.StaffID]domain.Staff
	txns       []domain.Transaction
	allowances []domain.Allowance
	counts     []domain.CashCount

	lockMu        sync.Mutex
	residentLocks map[int64]*sync.Mutex

	wrapTx func(portsrepo.LedgerTxStore) portsrepo.LedgerTxStore
}

// Option configures a Store.
type Option func(*Store)

// WithTxStoreWrapper decorates the store handed to every resident transaction.
// Tests use it to inject failures between writes.
func WithTxStoreWrapper(wrap func(portsrepo.LedgerTxStore) portsrepo.LedgerTxStore) Option {
	return func(s *Store) {
		s.wrapTx = wrap
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		sequences:     map[string]int64{},
		residents:     map[int64]domain.Resident{},
		staff:         map[domain.StaffID]domain.Staff{},
		residentLocks: map[int64]*sync.Mutex{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ portsrepo.LedgerRepositoryFacade    = (*Store)(nil)
	_ portsrepo.DirectoryRepositoryFacade = (*Store)(nil)
)

// AddResident seeds the resident directory.
func (s *Store) AddResident(r domain.Resident) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.residents[r.ID] = r
}

// AddStaff seeds the staff directory.
func (s *Store) AddStaff(st domain.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[st.ID] = st
}

// Counts returns the number of committed rows per table.
func (s *Store) Counts() (transactions, allowances, cashCounts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txns), len(s.allowances), len(s.counts)
}

func (s *Store) residentLock(residentID int64) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.residentLocks[residentID]
	if !ok {
		l = &sync.Mutex{}
		s.residentLocks[residentID] = l
	}
	return l
}

// nextID draws from a per-table sequence. Like a database sequence, ids consumed by a
// rolled back transaction are not reused.
func (s *Store) nextID(table string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequences[table]++
	return s.sequences[table]
}

// WithinResidentTx serializes fn against other transactions of the same resident.
func (s *Store) WithinResidentTx(ctx context.Context, residentID int64, fn portsrepo.ResidentTxFunc) error {
	l := s.residentLock(residentID)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	_, ok := s.residents[residentID]
	s.mu.Unlock()
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("resident %d not found", residentID))
	}

	staged := &txStore{parent: s}
	var store portsrepo.LedgerTxStore = staged
	if s.wrapTx != nil {
		store = s.wrapTx(store)
	}
	if err := fn(ctx, store); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.txns = append(s.txns, staged.txns...)
	s.allowances = append(s.allowances, staged.allowances...)
	s.counts = append(s.counts, staged.counts...)
	return nil
}

func (s *Store) snapshot() ([]domain.Transaction, []domain.Allowance, []domain.CashCount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Transaction(nil), s.txns...),
		append([]domain.Allowance(nil), s.allowances...),
		append([]domain.CashCount(nil), s.counts...)
}

func (s *Store) SumTransactions(_ context.Context, residentID int64, asOf *time.Time) (int64, error) {
	txns, _, _ := s.snapshot()
	return sumFor(txns, residentID, asOf), nil
}

func (s *Store) FindOpenAllowance(_ context.Context, residentID int64, day time.Time) (*domain.Allowance, error) {
	_, allowances, _ := s.snapshot()
	return domain.LatestOpen(allowancesFor(allowances, residentID), day), nil
}

func (s *Store) ListTransactionsBetween(_ context.Context, residentID int64, from, to time.Time) ([]domain.Transaction, error) {
	txns, _, _ := s.snapshot()
	out := []domain.Transaction{}
	for _, t := range txns {
		if t.ResidentID == residentID && !t.CreatedAt.Before(from) && t.CreatedAt.Before(to) {
			out = append(out, t)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *Store) ListTransactionsPage(_ context.Context, residentID int64, limit int, cursor *pagination.Cursor) ([]domain.Transaction, error) {
	txns, _, _ := s.snapshot()
	rows := []domain.Transaction{}
	for _, t := range txns {
		if t.ResidentID == residentID {
			rows = append(rows, t)
		}
	}
	sortNewestFirst(rows)

	out := []domain.Transaction{}
	for _, t := range rows {
		if cursor != nil && !cursor.IsAfter(t.CreatedAt, t.ID) {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) FindLatestCashCount(_ context.Context, residentID int64) (*domain.CashCount, error) {
	_, _, counts := s.snapshot()
	var latest *domain.CashCount
	for i := range counts {
		c := counts[i]
		if c.ResidentID != residentID {
			continue
		}
		if latest == nil || c.CountedAt.After(latest.CountedAt) ||
			(c.CountedAt.Equal(latest.CountedAt) && c.ID > latest.ID) {
			latest = &c
		}
	}
	return latest, nil
}

func (s *Store) ListCashCountsBetween(_ context.Context, residentIDs []int64, from, to time.Time) ([]domain.CashCount, error) {
	_, _, counts := s.snapshot()
	wanted := make(map[int64]struct{}, len(residentIDs))
	for _, id := range residentIDs {
		wanted[id] = struct{}{}
	}
	out := []domain.CashCount{}
	for _, c := range counts {
		if _, ok := wanted[c.ResidentID]; !ok {
			continue
		}
		if !c.CountedAt.Before(from) && c.CountedAt.Before(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func sumFor(txns []domain.Transaction, residentID int64, asOf *time.Time) int64 {
	var sum int64
	for _, t := range txns {
		if t.ResidentID != residentID {
			continue
		}
		if asOf != nil && t.CreatedAt.After(*asOf) {
			continue
		}
		sum += t.AmountCents
	}
	return sum
}

func allowancesFor(all []domain.Allowance, residentID int64) []domain.Allowance {
	out := make([]domain.Allowance, 0, len(all))
	for _, a := range all {
		if a.ResidentID == residentID {
			out = append(out, a)
		}
	}
	return out
}

func sortNewestFirst(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if txns[i].CreatedAt.Equal(txns[j].CreatedAt) {
			return txns[i].ID > txns[j].ID
		}
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
}
