package repositories

import (
	"context"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

// ResidentDirectory is the resident lookup the ledger consumes.
type ResidentDirectory interface {
	// FindResidentByID returns apperrors.ErrNotFound when the id is unknown.
	FindResidentByID(ctx context.Context, residentID int64) (*domain.Resident, error)

	// ListResidentsByHome returns the residents of a group home ordered by last name.
	ListResidentsByHome(ctx context.Context, homeID int64) ([]domain.Resident, error)

	// UpdateResident writes the present fields of update and returns the stored resident.
	UpdateResident(ctx context.Context, residentID int64, update domain.ResidentUpdate) (*domain.Resident, error)
}

// StaffDirectory resolves staff display names. Unknown ids are simply absent from the result.
type StaffDirectory interface {
	FindStaffByIDs(ctx context.Context, staffIDs []domain.StaffID) (map[domain.StaffID]domain.Staff, error)
}

// DirectoryRepositoryFacade combines both directories.
type DirectoryRepositoryFacade interface {
	ResidentDirectory
	StaffDirectory
}
