package dto

import (
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

// RecordCashCountRequest is the body of POST /cash-counts.
type RecordCashCountRequest struct {
	ResidentID   int64  `json:"resident_id" binding:"required,gt=0"`
	BalanceCents *int64 `json:"balance_cents" binding:"required"`
	StaffID      *int64 `json:"staff_id" binding:"required,gte=0"`
}

// ListCashCountsParams is the query of GET /cash-counts. An empty period means the current month.
type ListCashCountsParams struct {
	HomeID int64  `form:"homeId" binding:"required,gt=0"`
	Period string `form:"period" binding:"omitempty,period"`
}

// CashCountResponse defines the data returned for a cash count.
type CashCountResponse struct {
	ID           int64     `json:"id"`
	ResidentID   int64     `json:"resident_id"`
	BalanceCents int64     `json:"balance_cents"`
	DiffCents    int64     `json:"diff_cents"`
	IsMismatch   bool      `json:"is_mismatch"`
	StaffID      int64     `json:"staff_id"`
	CountedAt    time.Time `json:"counted_at"`
}

func ToCashCountResponse(c domain.CashCount) CashCountResponse {
	return CashCountResponse{
		ID:           c.ID,
		ResidentID:   c.ResidentID,
		BalanceCents: c.BalanceCents,
		DiffCents:    c.DiffCents,
		IsMismatch:   c.IsMismatch,
		StaffID:      int64(c.StaffID),
		CountedAt:    c.CountedAt,
	}
}

// HomeCashCountResponse is a count listed for a group home, with display names.
type HomeCashCountResponse struct {
	CashCountResponse
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StaffName string `json:"staff_name"`
}

// ListCashCountsResponse wraps the counts of a home.
type ListCashCountsResponse struct {
	Counts []HomeCashCountResponse `json:"counts"`
}

func ToListCashCountsResponse(views []domain.CashCountView) ListCashCountsResponse {
	res := ListCashCountsResponse{Counts: make([]HomeCashCountResponse, len(views))}
	for i, v := range views {
		res.Counts[i] = HomeCashCountResponse{
			CashCountResponse: ToCashCountResponse(v.CashCount),
			FirstName:         v.ResidentFirstName,
			LastName:          v.ResidentLastName,
			StaffName:         v.StaffName,
		}
	}
	return res
}
