package dto

import (
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the ledger's custom binding rules to v.
//
//	period: a "YYYY-MM" reporting month token
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePeriod(fl.Field().String())
		return err == nil
	})
}
