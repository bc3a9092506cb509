package mapping

import (
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/SscSPs/grouphome_ledger/internal/models"
)

// ToModelCashTransaction converts a domain Transaction to a model CashTransaction
func ToModelCashTransaction(d domain.Transaction) models.CashTransaction {
	return models.CashTransaction{
		ID:          d.ID,
		ResidentID:  d.ResidentID,
		AmountCents: d.AmountCents,
		Reason:      d.Reason,
		EnteredBy:   int64(d.EnteredBy),
		AllowanceID: d.AllowanceID,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainTransaction converts a model CashTransaction to a domain Transaction
func ToDomainTransaction(m models.CashTransaction) domain.Transaction {
	return domain.Transaction{
		ID:          m.ID,
		ResidentID:  m.ResidentID,
		AmountCents: m.AmountCents,
		Reason:      m.Reason,
		EnteredBy:   domain.StaffID(m.EnteredBy),
		AllowanceID: m.AllowanceID,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// ToDomainTransactionSlice converts a slice of model CashTransactions to domain Transactions
func ToDomainTransactionSlice(ms []models.CashTransaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelCashAllowance converts a domain Allowance to a model CashAllowance
func ToModelCashAllowance(d domain.Allowance) models.CashAllowance {
	return models.CashAllowance{
		ID:          d.ID,
		ResidentID:  d.ResidentID,
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		AmountCents: d.AmountCents,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainAllowance converts a model CashAllowance to a domain Allowance. DATE columns are
// normalised to midnight UTC.
func ToDomainAllowance(m models.CashAllowance) domain.Allowance {
	a := domain.Allowance{
		ID:          m.ID,
		ResidentID:  m.ResidentID,
		PeriodStart: domain.DateOf(m.PeriodStart, time.UTC),
		AmountCents: m.AmountCents,
		CreatedAt:   m.CreatedAt.UTC(),
	}
	if m.PeriodEnd != nil {
		end := domain.DateOf(*m.PeriodEnd, time.UTC)
		a.PeriodEnd = &end
	}
	return a
}

// ToModelCashCount converts a domain CashCount to a model CashCount
func ToModelCashCount(d domain.CashCount) models.CashCount {
	return models.CashCount{
		ID:           d.ID,
		ResidentID:   d.ResidentID,
		BalanceCents: d.BalanceCents,
		DiffCents:    d.DiffCents,
		IsMismatch:   d.IsMismatch,
		StaffID:      int64(d.StaffID),
		CountedAt:    d.CountedAt,
	}
}

// ToDomainCashCount converts a model CashCount to a domain CashCount
func ToDomainCashCount(m models.CashCount) domain.CashCount {
	return domain.CashCount{
		ID:           m.ID,
		ResidentID:   m.ResidentID,
		BalanceCents: m.BalanceCents,
		DiffCents:    m.DiffCents,
		IsMismatch:   m.IsMismatch,
		StaffID:      domain.StaffID(m.StaffID),
		CountedAt:    m.CountedAt.UTC(),
	}
}
