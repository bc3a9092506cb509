package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
)

func (s *Store) FindResidentByID(_ context.Context, residentID int64) (*domain.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.residents[residentID]
	if !ok {
		return nil, fmt.Errorf("resident %d: %w", residentID, apperrors.ErrNotFound)
	}
	return &r, nil
}

func (s *Store) ListResidentsByHome(_ context.Context, homeID int64) ([]domain.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Resident{}
	for _, r := range s.residents {
		if r.GroupHomeID != nil && *r.GroupHomeID == homeID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName == out[j].LastName {
			return out[i].ID < out[j].ID
		}
		return out[i].LastName < out[j].LastName
	})
	return out, nil
}

func (s *Store) UpdateResident(_ context.Context, residentID int64, update domain.ResidentUpdate) (*domain.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.residents[residentID]
	if !ok {
		return nil, fmt.Errorf("resident %d: %w", residentID, apperrors.ErrNotFound)
	}
	r = update.Apply(r)
	s.residents[residentID] = r
	return &r, nil
}

func (s *Store) FindStaffByIDs(_ context.Context, staffIDs []domain.StaffID) (map[domain.StaffID]domain.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.StaffID]domain.Staff, len(staffIDs))
	for _, id := range staffIDs {
		if st, ok := s.staff[id]; ok {
			out[id] = st
		}
	}
	return out, nil
}
