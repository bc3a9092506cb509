// Package rendertest provides summaries for renderer tests.
package rendertest

import (
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

// SampleSummary is a June 2025 summary: a $500.00 allowance credit, a $120.00 withdrawal
// and a count one dollar short.
func SampleSummary() domain.FinanceSummary {
	start, _ := domain.ParseDate("2025-06-01")
	withdrawal := "Groceries"
	credit := "Allowance 2025-06-01"
	allowanceID := int64(1)
	return domain.FinanceSummary{
		Resident:            domain.Resident{ID: 9, FirstName: "Ada", LastName: "Moss"},
		Period:              domain.ReportingPeriod{Year: 2025, Month: time.June},
		RunningBalanceCents: 38000,
		OpenAllowance:       &domain.Allowance{ID: 1, ResidentID: 9, PeriodStart: start, AmountCents: 50000},
		LatestCashCount: &domain.LatestCashCount{
			CashCount: domain.NewCashCount(9, 37900, 38000, 4, time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)),
			StaffName: "Sam Lee",
		},
		Transactions: []domain.StatementLine{
			{Transaction: domain.Transaction{ID: 2, ResidentID: 9, AmountCents: -12000, Reason: &withdrawal, EnteredBy: 4, CreatedAt: time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC)}, EnteredByName: "Sam Lee"},
			{Transaction: domain.Transaction{ID: 1, ResidentID: 9, AmountCents: 50000, Reason: &credit, AllowanceID: &allowanceID, CreatedAt: time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)}, EnteredByName: "System"},
		},
	}
}
