package render

import (
	"testing"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/adapters/render/rendertest"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatement(t *testing.T) {
	loc, err := time.LoadLocation("America/Edmonton")
	require.NoError(t, err)

	st := NewStatement(rendertest.SampleSummary(), loc)

	assert.Equal(t, "Ada Moss", st.ResidentName)
	assert.Equal(t, "June 2025", st.PeriodLabel)
	assert.Equal(t, "$380.00", st.Balance)
	assert.Equal(t, "$500.00 from 2025-06-01 to open-ended", st.OpenAllowance)
	assert.Equal(t, "$379.00 counted 2025-06-03 12:00 by Sam Lee (difference -$1.00) MISMATCH", st.LatestCount)
	assert.Equal(t, "$380.00", st.PeriodNet)
	require.Len(t, st.Rows, 2)
	assert.Equal(t, Row{Date: "2025-06-02 11:00", Reason: "Groceries", EnteredBy: "Sam Lee", AmountCents: -12000, Amount: "-$120.00"}, st.Rows[0])
}

func TestNewStatement_Empty(t *testing.T) {
	st := NewStatement(domain.FinanceSummary{
		Resident: domain.Resident{ID: 3, FirstName: "Bo"},
		Period:   domain.ReportingPeriod{Year: 2025, Month: time.January},
	}, nil)

	assert.Equal(t, "None", st.OpenAllowance)
	assert.Equal(t, "None", st.LatestCount)
	assert.Empty(t, st.Rows)
	assert.Equal(t, "$0.00", st.Balance)
	assert.Equal(t, "Staff #12", displayName("", 12))
}
