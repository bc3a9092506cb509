package services

import (
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, renderers map[portssvc.StatementFormat]portssvc.StatementRenderer, opts ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:         NewLedgerService(repos.LedgerRepo, opts...),
		Allowance:      NewAllowanceService(repos.LedgerRepo, opts...),
		Reconciliation: NewReconciliationService(repos.LedgerRepo, repos.DirectoryRepo, opts...),
		FinanceSummary: NewFinanceSummaryService(repos.LedgerRepo, repos.DirectoryRepo, renderers, opts...),
		Resident:       NewResidentService(repos.DirectoryRepo, opts...),
	}
}
