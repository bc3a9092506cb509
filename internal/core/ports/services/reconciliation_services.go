package services

import (
	"context"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

// ReconciliationSvcFacade records and lists physical cash counts.
type ReconciliationSvcFacade interface {
	// RecordCount compares the counted balance against the ledger and stores the result.
	RecordCount(ctx context.Context, residentID, balanceCents int64, staffID domain.StaffID) (*domain.CashCount, error)

	// ListHomeCounts lists the counts of a group home's residents within a reporting period,
	// by resident last name then newest count first.
	ListHomeCounts(ctx context.Context, homeID int64, periodToken string) ([]domain.CashCountView, error)
}
