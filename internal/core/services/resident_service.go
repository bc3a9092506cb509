package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
)

type residentService struct {
	BaseService
	directoryRepo portsrepo.ResidentDirectory
}

func NewResidentService(directoryRepo portsrepo.ResidentDirectory, opts ...ServiceOption) portssvc.ResidentSvcFacade {
	return &residentService{
		BaseService:   newBaseService(opts),
		directoryRepo: directoryRepo,
	}
}

var _ portssvc.ResidentSvcFacade = (*residentService)(nil)

func (s *residentService) GetResident(ctx context.Context, residentID int64) (*domain.Resident, error) {
	resident, err := s.directoryRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		return nil, s.notFoundOr(ctx, err, residentID)
	}
	return resident, nil
}

func (s *residentService) UpdateResident(ctx context.Context, residentID int64, update domain.ResidentUpdate) (*domain.Resident, error) {
	if update.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	if update.FirstName != nil && strings.TrimSpace(*update.FirstName) == "" {
		return nil, apperrors.NewValidationError("first_name must not be blank")
	}
	if update.LastName != nil && strings.TrimSpace(*update.LastName) == "" {
		return nil, apperrors.NewValidationError("last_name must not be blank")
	}

	resident, err := s.directoryRepo.UpdateResident(ctx, residentID, update)
	if err != nil {
		return nil, s.notFoundOr(ctx, err, residentID)
	}
	s.LogInfo(ctx, "Resident updated", slog.Int64("resident_id", residentID))
	return resident, nil
}

func (s *residentService) notFoundOr(ctx context.Context, err error, residentID int64) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(fmt.Sprintf("resident %d not found", residentID))
	}
	s.LogError(ctx, err, "Resident directory failure", slog.Int64("resident_id", residentID))
	return err
}
