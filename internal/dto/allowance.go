package dto

import (
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
)

// OpenAllowanceRequest is the body of POST /allowances/:staffId.
type OpenAllowanceRequest struct {
	ResidentID  int64   `json:"resident_id" binding:"required,gt=0"`
	AmountCents int64   `json:"amount_cents" binding:"required,gt=0"`
	PeriodStart string  `json:"period_start" binding:"required,datetime=2006-01-02"`
	PeriodEnd   *string `json:"period_end" binding:"omitempty,datetime=2006-01-02"`
}

// ToNewAllowance converts the request into the service input. Dates were already checked by
// binding.
func (r OpenAllowanceRequest) ToNewAllowance(attributedTo domain.StaffID) (portssvc.NewAllowance, error) {
	start, err := domain.ParseDate(r.PeriodStart)
	if err != nil {
		return portssvc.NewAllowance{}, err
	}
	req := portssvc.NewAllowance{
		ResidentID:   r.ResidentID,
		PeriodStart:  start,
		AmountCents:  r.AmountCents,
		AttributedTo: attributedTo,
	}
	if r.PeriodEnd != nil {
		end, err := domain.ParseDate(*r.PeriodEnd)
		if err != nil {
			return portssvc.NewAllowance{}, err
		}
		req.PeriodEnd = &end
	}
	return req, nil
}

// AllowanceResponse defines the data returned for an allowance. Period bounds are calendar dates.
type AllowanceResponse struct {
	ID          int64     `json:"id"`
	ResidentID  int64     `json:"resident_id"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   *string   `json:"period_end"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToAllowanceResponse(a domain.Allowance) AllowanceResponse {
	res := AllowanceResponse{
		ID:          a.ID,
		ResidentID:  a.ResidentID,
		PeriodStart: a.PeriodStart.Format(domain.DateLayout),
		AmountCents: a.AmountCents,
		CreatedAt:   a.CreatedAt,
	}
	if a.PeriodEnd != nil {
		end := a.PeriodEnd.Format(domain.DateLayout)
		res.PeriodEnd = &end
	}
	return res
}

// ToAllowanceResponsePtr is ToAllowanceResponse for optional allowances.
func ToAllowanceResponsePtr(a *domain.Allowance) *AllowanceResponse {
	if a == nil {
		return nil
	}
	res := ToAllowanceResponse(*a)
	return &res
}
