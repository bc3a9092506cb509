package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
)

// Allowance is one disbursement period for a resident. Opening it always produces exactly
// one linked credit transaction.
type Allowance struct {
	ID          int64      `json:"id"`
	ResidentID  int64      `json:"residentId"`
	PeriodStart time.Time  `json:"periodStart"`
	PeriodEnd   *time.Time `json:"periodEnd"`
	AmountCents int64      `json:"amountCents"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Validate checks the invariants an allowance must satisfy before it is stored.
func (a Allowance) Validate() error {
	if a.ResidentID <= 0 {
		return fmt.Errorf("%w: resident_id must be provided", apperrors.ErrValidation)
	}
	if a.AmountCents <= 0 {
		return fmt.Errorf("%w: amount_cents must be a positive integer", apperrors.ErrValidation)
	}
	if a.PeriodStart.IsZero() {
		return fmt.Errorf("%w: period_start must be provided", apperrors.ErrValidation)
	}
	if a.PeriodEnd != nil && a.PeriodEnd.Before(a.PeriodStart) {
		return fmt.Errorf("%w: period_end must not be before period_start", apperrors.ErrValidation)
	}
	return nil
}

// IsOpenOn reports whether the calendar date day falls inside the period.
// A nil PeriodEnd means the period is open-ended.
func (a Allowance) IsOpenOn(day time.Time) bool {
	if day.Before(a.PeriodStart) {
		return false
	}
	return a.PeriodEnd == nil || !a.PeriodEnd.Before(day)
}

// CreditReason is the ledger reason recorded on the allowance's credit transaction.
func (a Allowance) CreditReason() string {
	return "Allowance " + a.PeriodStart.Format(DateLayout)
}

// CreditTransaction builds the credit leg linked to the allowance.
func (a Allowance) CreditTransaction(attributedTo StaffID) Transaction {
	reason := a.CreditReason()
	id := a.ID
	return Transaction{
		ResidentID:  a.ResidentID,
		AmountCents: a.AmountCents,
		Reason:      &reason,
		EnteredBy:   attributedTo,
		AllowanceID: &id,
		CreatedAt:   a.CreatedAt,
	}
}

// LatestOpen picks the open allowance with the latest period start on day, breaking ties on
// the higher id so the choice is deterministic. It returns nil when none is open.
func LatestOpen(allowances []Allowance, day time.Time) *Allowance {
	var best *Allowance
	for i := range allowances {
		a := allowances[i]
		if !a.IsOpenOn(day) {
			continue
		}
		if best == nil || a.PeriodStart.After(best.PeriodStart) ||
			(a.PeriodStart.Equal(best.PeriodStart) && a.ID > best.ID) {
			best = &a
		}
	}
	return best
}
