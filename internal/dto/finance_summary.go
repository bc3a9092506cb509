package dto

import "github.com/SscSPs/grouphome_ledger/internal/core/domain"

// PeriodParams is the optional reporting month query shared by the summary routes.
type PeriodParams struct {
	Period string `form:"period" binding:"omitempty,period"`
}

// AsOfParams is the optional point-in-time query. Both a calendar date and an RFC 3339
// instant are accepted.
type AsOfParams struct {
	AsOf string `form:"asOf"`
}

// StatementLineResponse is a ledger row with the entering staff member's name.
type StatementLineResponse struct {
	TransactionResponse
	EnteredByName string `json:"entered_by_name"`
}

// LatestCashCountResponse is the newest count with the counting staff member's name.
type LatestCashCountResponse struct {
	CashCountResponse
	StaffName string `json:"staff_name"`
}

// FinanceSummaryResponse defines the data returned by GET /residents/:id/finance-summary.
type FinanceSummaryResponse struct {
	Resident            ResidentResponse         `json:"resident"`
	Period              string                   `json:"period"`
	LatestCashCount     *LatestCashCountResponse `json:"latest_cash_count"`
	RunningBalanceCents int64                    `json:"running_balance_cents"`
	OpenAllowance       *AllowanceResponse       `json:"open_allowance"`
	Transactions        []StatementLineResponse  `json:"transactions"`
}

func ToFinanceSummaryResponse(s *domain.FinanceSummary) FinanceSummaryResponse {
	res := FinanceSummaryResponse{
		Resident:            ToResidentResponse(s.Resident),
		Period:              s.Period.String(),
		RunningBalanceCents: s.RunningBalanceCents,
		OpenAllowance:       ToAllowanceResponsePtr(s.OpenAllowance),
		Transactions:        make([]StatementLineResponse, len(s.Transactions)),
	}
	if s.LatestCashCount != nil {
		res.LatestCashCount = &LatestCashCountResponse{
			CashCountResponse: ToCashCountResponse(s.LatestCashCount.CashCount),
			StaffName:         s.LatestCashCount.StaffName,
		}
	}
	for i, line := range s.Transactions {
		res.Transactions[i] = StatementLineResponse{
			TransactionResponse: ToTransactionResponse(line.Transaction),
			EnteredByName:       line.EnteredByName,
		}
	}
	return res
}
