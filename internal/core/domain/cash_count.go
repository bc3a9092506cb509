package domain

import (
	"time"
)

// CashCount is a staff-attested physical cash count compared against the ledger.
// DiffCents and IsMismatch are frozen at creation and never recomputed.
type CashCount struct {
	ID           int64     `json:"id"`
	ResidentID   int64     `json:"residentId"`
	BalanceCents int64     `json:"balanceCents"`
	DiffCents    int64     `json:"diffCents"`
	IsMismatch   bool      `json:"isMismatch"`
	StaffID      StaffID   `json:"staffId"`
	CountedAt    time.Time `json:"countedAt"`
}

// NewCashCount derives the discrepancy of a counted balance against the running ledger balance.
func NewCashCount(residentID, balanceCents, runningBalanceCents int64, staffID StaffID, at time.Time) CashCount {
	diff := balanceCents - runningBalanceCents
	return CashCount{
		ResidentID:   residentID,
		BalanceCents: balanceCents,
		DiffCents:    diff,
		IsMismatch:   diff != 0,
		StaffID:      staffID,
		CountedAt:    at,
	}
}

// ExpectedBalanceCents is the ledger balance the count was compared against.
func (c CashCount) ExpectedBalanceCents() int64 {
	return c.BalanceCents - c.DiffCents
}

// CashCountView is a count joined with resident and staff display names.
type CashCountView struct {
	CashCount
	ResidentFirstName string `json:"firstName"`
	ResidentLastName  string `json:"lastName"`
	StaffName         string `json:"staffName"`
}
