package dto

import "github.com/SscSPs/grouphome_ledger/internal/core/domain"

// ResidentResponse defines the data returned for a resident.
type ResidentResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	GroupHomeID *int64 `json:"group_home_id"`
}

func ToResidentResponse(r domain.Resident) ResidentResponse {
	return ResidentResponse{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		GroupHomeID: r.GroupHomeID,
	}
}

// UpdateResidentRequest is a partial update. Omitted fields are left untouched.
type UpdateResidentRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	GroupHomeID *int64  `json:"group_home_id" binding:"omitempty,gt=0"`
}

func (r UpdateResidentRequest) ToResidentUpdate() domain.ResidentUpdate {
	return domain.ResidentUpdate{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		GroupHomeID: r.GroupHomeID,
	}
}
