package services

import (
	"context"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

// NewTransaction is the input of a ledger write.
type NewTransaction struct {
	ResidentID  int64
	AmountCents int64
	Reason      *string
	EnteredBy   domain.StaffID
	AllowanceID *int64
}

// LedgerWriterSvc defines the append-only writes of the ledger.
type LedgerWriterSvc interface {
	// RecordTransaction appends one row. Zero amounts and unknown residents fail validation.
	RecordTransaction(ctx context.Context, req NewTransaction) (*domain.Transaction, error)

	// RecordCashMovement appends a row that is always linked to an allowance: the given one,
	// which must belong to the resident, or else the one currently open.
	RecordCashMovement(ctx context.Context, req NewTransaction) (*domain.Transaction, error)

	// CorrectTransaction appends the offsetting row for one of the resident's transactions.
	// The original row is never modified.
	CorrectTransaction(ctx context.Context, residentID, transactionID int64, enteredBy domain.StaffID) (*domain.Transaction, error)
}

// LedgerReaderSvc defines ledger reads.
type LedgerReaderSvc interface {
	// RunningBalance sums every row created at or before asOf (now when nil).
	RunningBalance(ctx context.Context, residentID int64, asOf *time.Time) (int64, error)

	// ListTransactions pages through the resident's history newest first.
	ListTransactions(ctx context.Context, residentID int64, limit int, nextToken *string) (*domain.TransactionPage, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
