package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := domain.ParsePeriod("2025-06")
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, time.June, p.Month)
	assert.Equal(t, "2025-06", p.String())
	assert.Equal(t, "June 2025", p.Label())

	for _, bad := range []string{"2025-6", "2025-13", "June", "2025-06-01", ""} {
		_, err := domain.ParsePeriod(bad)
		assert.Error(t, err, bad)
	}
}

func TestReportingPeriod_BoundsInReferenceZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Edmonton")
	require.NoError(t, err)

	p := domain.ReportingPeriod{Year: 2025, Month: time.June}
	start, end := p.Bounds(loc)

	assert.Equal(t, time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC), end.UTC())
}

func TestResolvePeriod_DefaultsToCurrentMonth(t *testing.T) {
	loc, err := time.LoadLocation("America/Edmonton")
	require.NoError(t, err)
	now := time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC) // Feb 28th evening locally

	p, err := domain.ResolvePeriod("", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "2025-02", p.String())

	p, err = domain.ResolvePeriod("2024-11", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-11", p.String())
}

func TestReportingPeriod_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(domain.ReportingPeriod{Year: 2025, Month: time.January})
	require.NoError(t, err)
	assert.Equal(t, `"2025-01"`, string(b))
}
