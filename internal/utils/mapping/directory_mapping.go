package mapping

import (
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/SscSPs/grouphome_ledger/internal/models"
)

// ToDomainResident converts a model Resident to a domain Resident
func ToDomainResident(m models.Resident) domain.Resident {
	return domain.Resident{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		GroupHomeID: m.GroupHomeID,
	}
}

// ToDomainResidentSlice converts a slice of model Residents to domain Residents
func ToDomainResidentSlice(ms []models.Resident) []domain.Resident {
	ds := make([]domain.Resident, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainResident(m)
	}
	return ds
}

// ToDomainStaff converts a model Staff to a domain Staff
func ToDomainStaff(m models.Staff) domain.Staff {
	return domain.Staff{
		ID:        domain.StaffID(m.ID),
		FirstName: m.FirstName,
		LastName:  m.LastName,
	}
}
