package domain

// LatestCashCount is the most recent count of a resident with the counting staff's name.
type LatestCashCount struct {
	CashCount
	StaffName string `json:"staffName"`
}

// FinanceSummary is the derived read view of a resident's cash. It is recomputed on every
// request and never persisted.
type FinanceSummary struct {
	Resident            Resident         `json:"resident"`
	Period              ReportingPeriod  `json:"period"`
	LatestCashCount     *LatestCashCount `json:"latestCashCount"`
	RunningBalanceCents int64            `json:"runningBalanceCents"`
	OpenAllowance       *Allowance       `json:"openAllowance"`
	Transactions        []StatementLine  `json:"transactions"`
}

// PeriodNetCents is the sum of the listed transactions.
func (s FinanceSummary) PeriodNetCents() int64 {
	var total int64
	for _, t := range s.Transactions {
		total += t.AmountCents
	}
	return total
}

// Statement is a rendered document ready to be handed to a caller.
type Statement struct {
	FileName    string
	ContentType string
	Content     []byte
}
