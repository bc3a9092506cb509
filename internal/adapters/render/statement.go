// Package render holds the statement layout shared by the document renderers.
package render

import (
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

const timestampLayout = "2006-01-02 15:04"

// Row is one printable ledger line.
type Row struct {
	Date        string
	Reason      string
	EnteredBy   string
	AmountCents int64
	Amount      string
}

// Statement is the printable form of a finance summary.
type Statement struct {
	Title         string
	ResidentName  string
	PeriodLabel   string
	Balance       string
	OpenAllowance string
	LatestCount   string
	PeriodNet     string
	Rows          []Row
}

// NewStatement lays out summary with timestamps shown in loc.
func NewStatement(summary domain.FinanceSummary, loc *time.Location) Statement {
	if loc == nil {
		loc = time.UTC
	}
	st := Statement{
		Title:         "Resident Cash Statement",
		ResidentName:  summary.Resident.FullName(),
		PeriodLabel:   summary.Period.Label(),
		Balance:       domain.FormatCents(summary.RunningBalanceCents),
		OpenAllowance: "None",
		LatestCount:   "None",
		PeriodNet:     domain.FormatCents(summary.PeriodNetCents()),
		Rows:          make([]Row, 0, len(summary.Transactions)),
	}

	if a := summary.OpenAllowance; a != nil {
		end := "open-ended"
		if a.PeriodEnd != nil {
			end = a.PeriodEnd.Format(domain.DateLayout)
		}
		st.OpenAllowance = fmt.Sprintf("%s from %s to %s", domain.FormatCents(a.AmountCents), a.PeriodStart.Format(domain.DateLayout), end)
	}

	if c := summary.LatestCashCount; c != nil {
		st.LatestCount = fmt.Sprintf("%s counted %s by %s (difference %s)",
			domain.FormatCents(c.BalanceCents),
			c.CountedAt.In(loc).Format(timestampLayout),
			displayName(c.StaffName, c.StaffID),
			domain.FormatCents(c.DiffCents))
		if c.IsMismatch {
			st.LatestCount += " MISMATCH"
		}
	}

	for _, line := range summary.Transactions {
		reason := ""
		if line.Reason != nil {
			reason = *line.Reason
		}
		st.Rows = append(st.Rows, Row{
			Date:        line.CreatedAt.In(loc).Format(timestampLayout),
			Reason:      reason,
			EnteredBy:   displayName(line.EnteredByName, line.EnteredBy),
			AmountCents: line.AmountCents,
			Amount:      domain.FormatCents(line.AmountCents),
		})
	}
	return st
}

func displayName(name string, id domain.StaffID) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("Staff #%d", id)
}
