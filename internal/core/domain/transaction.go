package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
)

// Transaction is one signed movement of cash in a resident's ledger.
// Positive amounts are credits (cash added), negative amounts are debits (cash taken).
// Transactions are never updated or deleted; corrections are new offsetting rows.
type Transaction struct {
	ID          int64     `json:"id"`
	ResidentID  int64     `json:"residentId"`
	AmountCents int64     `json:"amountCents"`
	Reason      *string   `json:"reason"`
	EnteredBy   StaffID   `json:"enteredBy"`
	AllowanceID *int64    `json:"allowanceId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks the invariants a transaction must satisfy before it is stored.
func (t Transaction) Validate() error {
	if t.ResidentID <= 0 {
		return fmt.Errorf("%w: resident_id must be provided", apperrors.ErrValidation)
	}
	if t.AmountCents == 0 {
		return fmt.Errorf("%w: amount_cents must be a non-zero integer", apperrors.ErrValidation)
	}
	if t.EnteredBy < 0 {
		return fmt.Errorf("%w: entered_by must be a valid staff id", apperrors.ErrValidation)
	}
	return nil
}

// IsCredit reports whether the movement adds cash.
func (t Transaction) IsCredit() bool {
	return t.AmountCents > 0
}

// CorrectionOf builds the offsetting transaction that cancels t.
func CorrectionOf(t Transaction, enteredBy StaffID, at time.Time) Transaction {
	reason := fmt.Sprintf("Correction of transaction #%d", t.ID)
	return Transaction{
		ResidentID:  t.ResidentID,
		AmountCents: -t.AmountCents,
		Reason:      &reason,
		EnteredBy:   enteredBy,
		AllowanceID: t.AllowanceID,
		CreatedAt:   at,
	}
}

// StatementLine is a transaction joined with the display name of whoever entered it.
type StatementLine struct {
	Transaction
	EnteredByName string `json:"enteredByName"`
}

// TransactionPage is one page of a resident's ledger history, newest first.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	NextToken    *string       `json:"nextToken,omitempty"`
}
