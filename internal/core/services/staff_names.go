package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
)

// systemStaffName is shown for rows attributed to domain.SystemAttribution.
const systemStaffName = "System"

type staffNames map[domain.StaffID]domain.Staff

func (n staffNames) nameOf(id domain.StaffID) string {
	if id.IsSystem() {
		return systemStaffName
	}
	if st, ok := n[id]; ok {
		return st.FullName()
	}
	return ""
}

// resolveStaffNames looks up display names in one call. A failed lookup only costs the names.
func resolveStaffNames(ctx context.Context, base *BaseService, dir portsrepo.StaffDirectory, ids []domain.StaffID) staffNames {
	unique := make([]domain.StaffID, 0, len(ids))
	seen := make(map[domain.StaffID]struct{}, len(ids))
	for _, id := range ids {
		if id.IsSystem() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return staffNames{}
	}

	found, err := dir.FindStaffByIDs(ctx, unique)
	if err != nil {
		base.LogWarn(ctx, "Staff name lookup failed", slog.String("error", err.Error()))
		return staffNames{}
	}
	return staffNames(found)
}
