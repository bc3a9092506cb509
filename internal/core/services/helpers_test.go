package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/grouphome_ledger/internal/core/services"
	"github.com/SscSPs/grouphome_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/mock"
)

const residentID int64 = 9

var edmonton = mustLocation("America/Edmonton")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// steppingClock advances one minute on every read so rows get distinct timestamps.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSteppingClock(start time.Time) *steppingClock {
	return &steppingClock{now: start}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

func (c *steppingClock) options() []services.ServiceOption {
	return []services.ServiceOption{services.WithClock(c.Now), services.WithLocation(edmonton)}
}

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// localMidnight is the start of the YYYY-MM-DD day in the reporting timezone.
func localMidnight(s string) time.Time {
	d := date(s)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, edmonton)
}

func ptr[T any](v T) *T {
	return &v
}

func seededStore(opts ...memory.Option) *memory.Store {
	store := memory.New(opts...)
	home := int64(1)
	store.AddResident(domain.Resident{ID: residentID, FirstName: "Ada", LastName: "Moss", GroupHomeID: &home})
	store.AddStaff(domain.Staff{ID: 4, FirstName: "Sam", LastName: "Lee"})
	return store
}

// failingCreditStore fails every transaction insert, simulating a crash between the
// allowance insert and its credit.
type failingCreditStore struct {
	portsrepo.LedgerTxStore
	err error
}

func (f failingCreditStore) InsertTransaction(context.Context, domain.Transaction) (domain.Transaction, error) {
	return domain.Transaction{}, f.err
}

// MockStaffDirectory is a mock type for the StaffDirectory interface
type MockStaffDirectory struct {
	mock.Mock
}

func (m *MockStaffDirectory) FindStaffByIDs(ctx context.Context, staffIDs []domain.StaffID) (map[domain.StaffID]domain.Staff, error) {
	args := m.Called(ctx, staffIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.StaffID]domain.Staff), args.Error(1)
}

// directoryWithStaff serves residents from the memory store and staff from a mock.
type directoryWithStaff struct {
	portsrepo.ResidentDirectory
	*MockStaffDirectory
}

// MockStatementRenderer is a mock type for the StatementRenderer interface
type MockStatementRenderer struct {
	mock.Mock
}

func (m *MockStatementRenderer) Render(ctx context.Context, summary domain.FinanceSummary) ([]byte, error) {
	args := m.Called(ctx, summary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStatementRenderer) ContentType() string {
	return m.Called().String(0)
}

func (m *MockStatementRenderer) Extension() string {
	return m.Called().String(0)
}

func portsrepoProvider(store *memory.Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{LedgerRepo: store, DirectoryRepo: store}
}
