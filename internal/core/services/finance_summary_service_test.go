package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/SscSPs/grouphome_ledger/internal/core/services"
	"github.com/SscSPs/grouphome_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FinanceSummaryServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memory.Store
	clock     *steppingClock
	renderer  *MockStatementRenderer
	container *portssvc.ServiceContainer
}

func (s *FinanceSummaryServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = seededStore()
	s.clock = newSteppingClock(time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC))
	s.renderer = new(MockStatementRenderer)
	s.container = services.NewServiceContainer(
		portsrepoProvider(s.store),
		map[portssvc.StatementFormat]portssvc.StatementRenderer{portssvc.StatementPDF: s.renderer},
		s.clock.options()...,
	)
}

func TestFinanceSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceSummaryServiceTestSuite))
}

// seedScenario opens a $500.00 allowance, withdraws $120.00 and counts $380.00.
func (s *FinanceSummaryServiceTestSuite) seedScenario() (*domain.Allowance, *domain.CashCount) {
	allowance, err := s.container.Allowance.OpenAllowance(s.ctx, portssvc.NewAllowance{
		ResidentID:   residentID,
		PeriodStart:  date("2025-06-01"),
		AmountCents:  50000,
		AttributedTo: domain.SystemAttribution,
	})
	s.Require().NoError(err)

	withdrawal, err := s.container.Ledger.RecordCashMovement(s.ctx, portssvc.NewTransaction{ResidentID: residentID, AmountCents: -12000, EnteredBy: 4})
	s.Require().NoError(err)
	s.Equal(int64(2), withdrawal.ID)

	count, err := s.container.Reconciliation.RecordCount(s.ctx, residentID, 38000, 4)
	s.Require().NoError(err)
	return allowance, count
}

func (s *FinanceSummaryServiceTestSuite) TestGetSummary_EndToEnd() {
	allowance, count := s.seedScenario()
	s.Zero(count.DiffCents)
	s.False(count.IsMismatch)

	summary, err := s.container.FinanceSummary.GetSummary(s.ctx, residentID, "2025-06")
	s.Require().NoError(err)

	s.Equal("Ada", summary.Resident.FirstName)
	s.Equal("2025-06", summary.Period.String())
	s.Equal(int64(38000), summary.RunningBalanceCents)
	s.Require().NotNil(summary.OpenAllowance)
	s.Equal(allowance.ID, summary.OpenAllowance.ID)
	s.Require().NotNil(summary.LatestCashCount)
	s.Equal(count.ID, summary.LatestCashCount.ID)
	s.Equal("Sam Lee", summary.LatestCashCount.StaffName)

	s.Require().Len(summary.Transactions, 2)
	s.Equal(int64(2), summary.Transactions[0].ID)
	s.Equal("Sam Lee", summary.Transactions[0].EnteredByName)
	s.Equal(int64(1), summary.Transactions[1].ID)
	s.Equal("System", summary.Transactions[1].EnteredByName)
	s.Equal(int64(38000), summary.PeriodNetCents())
}

func (s *FinanceSummaryServiceTestSuite) TestGetSummary_PeriodFiltersButBalanceIsAllTime() {
	s.seedScenario()

	summary, err := s.container.FinanceSummary.GetSummary(s.ctx, residentID, "2025-05")
	s.Require().NoError(err)
	s.Empty(summary.Transactions)
	s.Equal(int64(38000), summary.RunningBalanceCents)
}

func (s *FinanceSummaryServiceTestSuite) TestGetSummary_EmptyResident() {
	summary, err := s.container.FinanceSummary.GetSummary(s.ctx, residentID, "")
	s.Require().NoError(err)
	s.Zero(summary.RunningBalanceCents)
	s.Nil(summary.LatestCashCount)
	s.Nil(summary.OpenAllowance)
	s.NotNil(summary.Transactions)
	s.Empty(summary.Transactions)
	s.Equal("2025-06", summary.Period.String())
}

func (s *FinanceSummaryServiceTestSuite) TestGetSummary_Errors() {
	_, err := s.container.FinanceSummary.GetSummary(s.ctx, 404, "2025-06")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.container.FinanceSummary.GetSummary(s.ctx, residentID, "2025-6")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *FinanceSummaryServiceTestSuite) TestExportStatement() {
	s.seedScenario()
	s.renderer.On("Render", mock.Anything, mock.MatchedBy(func(sum domain.FinanceSummary) bool {
		return sum.Resident.ID == residentID && len(sum.Transactions) == 2
	})).Return([]byte("%PDF-1.3"), nil).Once()
	s.renderer.On("Extension").Return("pdf")
	s.renderer.On("ContentType").Return("application/pdf")

	statement, err := s.container.FinanceSummary.ExportStatement(s.ctx, residentID, "2025-06", portssvc.StatementPDF)

	s.Require().NoError(err)
	s.Equal("transactions-9.pdf", statement.FileName)
	s.Equal("application/pdf", statement.ContentType)
	s.Equal([]byte("%PDF-1.3"), statement.Content)
	s.renderer.AssertExpectations(s.T())
}

func (s *FinanceSummaryServiceTestSuite) TestExportStatement_RenderFailure() {
	s.seedScenario()
	s.renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("template missing")).Once()

	_, err := s.container.FinanceSummary.ExportStatement(s.ctx, residentID, "2025-06", portssvc.StatementPDF)

	s.ErrorIs(err, apperrors.ErrRender)
	txns, allowances, counts := s.store.Counts()
	s.Equal([]int{2, 1, 1}, []int{txns, allowances, counts}, "ledger untouched by a render failure")
}

func (s *FinanceSummaryServiceTestSuite) TestExportStatement_UnsupportedFormat() {
	_, err := s.container.FinanceSummary.ExportStatement(s.ctx, residentID, "", portssvc.StatementXLSX)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.renderer.AssertNotCalled(s.T(), "Render", mock.Anything, mock.Anything)
}

func TestGetSummary_StaffLookupFailureIsDisplayOnly(t *testing.T) {
	store := seededStore()
	staff := new(MockStaffDirectory)
	staff.On("FindStaffByIDs", mock.Anything, []domain.StaffID{4}).Return(nil, errors.New("directory down"))

	ledger := services.NewLedgerService(store)
	_, err := ledger.RecordTransaction(context.Background(), portssvc.NewTransaction{ResidentID: residentID, AmountCents: 500, EnteredBy: 4})
	require.NoError(t, err)

	svc := services.NewFinanceSummaryService(store, directoryWithStaff{ResidentDirectory: store, MockStaffDirectory: staff}, nil)
	summary, err := svc.GetSummary(context.Background(), residentID, "")

	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)
	assert.Equal(t, "", summary.Transactions[0].EnteredByName)
	assert.Equal(t, int64(500), summary.RunningBalanceCents)
	staff.AssertExpectations(t)
}
