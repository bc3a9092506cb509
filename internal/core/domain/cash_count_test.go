package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewCashCount(t *testing.T) {
	at := time.Date(2025, 6, 20, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		balance      int64
		running      int64
		wantDiff     int64
		wantMismatch bool
	}{
		{"matching count", 1000, 1000, 0, false},
		{"short by a dollar", 900, 1000, -100, true},
		{"over", 1250, 1000, 250, true},
		{"empty ledger", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.NewCashCount(9, tt.balance, tt.running, 4, at)
			assert.Equal(t, tt.wantDiff, c.DiffCents)
			assert.Equal(t, tt.wantMismatch, c.IsMismatch)
			assert.Equal(t, tt.running, c.ExpectedBalanceCents())
			assert.Equal(t, domain.StaffID(4), c.StaffID)
			assert.Equal(t, at, c.CountedAt)
		})
	}
}
