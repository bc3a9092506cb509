package services

import (
	"context"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

// StatementFormat selects the document produced by ExportStatement.
type StatementFormat string

const (
	StatementPDF  StatementFormat = "pdf"
	StatementXLSX StatementFormat = "xlsx"
)

// StatementRenderer turns a summary into a document. Failures are reported as render errors
// by the caller.
type StatementRenderer interface {
	Render(ctx context.Context, summary domain.FinanceSummary) ([]byte, error)
	ContentType() string
	Extension() string
}

// FinanceSummarySvcFacade builds the read view of a resident's cash.
type FinanceSummarySvcFacade interface {
	// GetSummary composes the summary for the period token ("YYYY-MM"; current month when empty).
	GetSummary(ctx context.Context, residentID int64, periodToken string) (*domain.FinanceSummary, error)

	// ExportStatement renders the summary with the renderer registered for format.
	ExportStatement(ctx context.Context, residentID int64, periodToken string, format StatementFormat) (*domain.Statement, error)
}
