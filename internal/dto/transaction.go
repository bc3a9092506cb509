package dto

import (
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
)

// RecordTransactionRequest is the body of POST /transactions. When AllowanceID is omitted the
// allowance open today is used.
type RecordTransactionRequest struct {
	ResidentID  int64   `json:"resident_id" binding:"required,gt=0"`
	AmountCents int64   `json:"amount_cents" binding:"required"`
	EnteredBy   *int64  `json:"entered_by" binding:"required,gte=0"`
	AllowanceID *int64  `json:"allowance_id" binding:"omitempty,gt=0"`
	Reason      *string `json:"reason" binding:"omitempty,max=255"`
}

// ToNewTransaction converts the request into the service input.
func (r RecordTransactionRequest) ToNewTransaction() portssvc.NewTransaction {
	return portssvc.NewTransaction{
		ResidentID:  r.ResidentID,
		AmountCents: r.AmountCents,
		Reason:      r.Reason,
		EnteredBy:   domain.StaffID(*r.EnteredBy),
		AllowanceID: r.AllowanceID,
	}
}

// CorrectTransactionRequest is the body of POST /residents/:id/transactions/:transactionId/correction.
type CorrectTransactionRequest struct {
	EnteredBy *int64 `json:"entered_by" binding:"required,gte=0"`
}

// TransactionResponse defines the data returned for a ledger row.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	ResidentID  int64     `json:"resident_id"`
	AmountCents int64     `json:"amount_cents"`
	Reason      *string   `json:"reason"`
	EnteredBy   int64     `json:"entered_by"`
	AllowanceID *int64    `json:"allowance_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		ResidentID:  t.ResidentID,
		AmountCents: t.AmountCents,
		Reason:      t.Reason,
		EnteredBy:   int64(t.EnteredBy),
		AllowanceID: t.AllowanceID,
		CreatedAt:   t.CreatedAt,
	}
}

// ListTransactionsParams holds the paging query of GET /residents/:id/transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of ledger history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"next_token,omitempty"`
}

func ToListTransactionsResponse(page *domain.TransactionPage) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(page.Transactions)),
		NextToken:    page.NextToken,
	}
	for i, t := range page.Transactions {
		res.Transactions[i] = ToTransactionResponse(t)
	}
	return res
}

// BalanceResponse is the running balance of a resident at an instant.
type BalanceResponse struct {
	ResidentID   int64      `json:"resident_id"`
	AsOf         *time.Time `json:"as_of"`
	BalanceCents int64      `json:"balance_cents"`
}
