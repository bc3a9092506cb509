package services

import (
	"context"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

// ResidentSvcFacade exposes the resident directory.
type ResidentSvcFacade interface {
	GetResident(ctx context.Context, residentID int64) (*domain.Resident, error)

	// UpdateResident applies only the fields present in update.
	UpdateResident(ctx context.Context, residentID int64, update domain.ResidentUpdate) (*domain.Resident, error)
}
