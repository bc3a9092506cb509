package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("amount_cents must be non-zero"), http.StatusBadRequest},
		{"not found", apperrors.NewNotFoundError("resident 9 not found"), http.StatusNotFound},
		{"conflict", apperrors.NewConflictError("duplicate period"), http.StatusConflict},
		{"render", apperrors.NewRenderError("pdf failed", errors.New("font missing")), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("saving: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"duplicate sentinel", fmt.Errorf("insert: %w", apperrors.ErrDuplicate), http.StatusConflict},
		{"plain error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("open allowance: %w", apperrors.NewConflictError("allowance period already exists"))
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	renderErr := apperrors.NewRenderError("statement rendering failed", errors.New("boom"))
	assert.True(t, errors.Is(renderErr, apperrors.ErrRender))

	generic := apperrors.NewAppError(http.StatusNotFound, "gone", nil)
	assert.True(t, errors.Is(generic, apperrors.ErrNotFound))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "resident 4 not found", apperrors.PublicMessage(apperrors.NewNotFoundError("resident 4 not found"), "fallback"))
	assert.Equal(t, "fallback", apperrors.PublicMessage(errors.New("pq: deadlock detected"), "fallback"))
}
