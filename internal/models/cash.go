package models

import "time"

// CashTransaction is a row of cash_transactions.
type CashTransaction struct {
	ID          int64     `db:"id"`
	ResidentID  int64     `db:"resident_id"`
	AmountCents int64     `db:"amount_cents"`
	Reason      *string   `db:"reason"`
	EnteredBy   int64     `db:"entered_by"`
	AllowanceID *int64    `db:"allowance_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// CashAllowance is a row of cash_allowances. Period columns are DATE.
type CashAllowance struct {
	ID          int64      `db:"id"`
	ResidentID  int64      `db:"resident_id"`
	PeriodStart time.Time  `db:"period_start"`
	PeriodEnd   *time.Time `db:"period_end"`
	AmountCents int64      `db:"amount_cents"`
	CreatedAt   time.Time  `db:"created_at"`
}

// CashCount is a row of cash_counts.
type CashCount struct {
	ID           int64     `db:"id"`
	ResidentID   int64     `db:"resident_id"`
	BalanceCents int64     `db:"balance_cents"`
	DiffCents    int64     `db:"diff_cents"`
	IsMismatch   bool      `db:"is_mismatch"`
	StaffID      int64     `db:"staff_id"`
	CountedAt    time.Time `db:"counted_at"`
}
