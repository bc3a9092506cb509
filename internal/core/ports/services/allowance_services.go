package services

import (
	"context"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

// NewAllowance is the input of OpenAllowance. Dates are calendar dates.
type NewAllowance struct {
	ResidentID   int64
	PeriodStart  time.Time
	PeriodEnd    *time.Time
	AmountCents  int64
	AttributedTo domain.StaffID
}

// AllowanceSvcFacade manages allowance periods.
type AllowanceSvcFacade interface {
	// OpenAllowance stores the allowance and its credit transaction as one unit.
	OpenAllowance(ctx context.Context, req NewAllowance) (*domain.Allowance, error)

	// FindOpenAllowance returns the allowance open on the calendar date asOf (today when nil),
	// or nil when none is.
	FindOpenAllowance(ctx context.Context, residentID int64, asOf *time.Time) (*domain.Allowance, error)
}
