package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/SscSPs/grouphome_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidentService(t *testing.T) {
	ctx := context.Background()
	store := seededStore()
	svc := services.NewResidentService(store)

	resident, err := svc.GetResident(ctx, residentID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Moss", resident.FullName())

	_, err = svc.GetResident(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	home := int64(7)
	updated, err := svc.UpdateResident(ctx, residentID, domain.ResidentUpdate{LastName: ptr("Mossley"), GroupHomeID: &home})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName, "absent fields are untouched")
	assert.Equal(t, "Mossley", updated.LastName)
	assert.Equal(t, int64(7), *updated.GroupHomeID)

	_, err = svc.UpdateResident(ctx, residentID, domain.ResidentUpdate{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UpdateResident(ctx, residentID, domain.ResidentUpdate{FirstName: ptr("  ")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UpdateResident(ctx, 404, domain.ResidentUpdate{FirstName: ptr("X")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
