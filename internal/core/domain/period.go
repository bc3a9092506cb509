package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
)

// PeriodLayout is the reporting period token format.
const PeriodLayout = "2006-01"

// ReportingPeriod is a calendar month in the reporting timezone.
type ReportingPeriod struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a "YYYY-MM" token.
func ParsePeriod(token string) (ReportingPeriod, error) {
	t, err := time.Parse(PeriodLayout, token)
	if err != nil || len(token) != len(PeriodLayout) {
		return ReportingPeriod{}, fmt.Errorf("%w: period must be formatted as YYYY-MM, got %q", apperrors.ErrValidation, token)
	}
	return ReportingPeriod{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodContaining returns the month of t as observed in loc.
func PeriodContaining(t time.Time, loc *time.Location) ReportingPeriod {
	if loc == nil {
		loc = time.UTC
	}
	y, m, _ := t.In(loc).Date()
	return ReportingPeriod{Year: y, Month: m}
}

// ResolvePeriod parses token, or falls back to the month containing now when token is empty.
func ResolvePeriod(token string, now time.Time, loc *time.Location) (ReportingPeriod, error) {
	if token == "" {
		return PeriodContaining(now, loc), nil
	}
	return ParsePeriod(token)
}

// Bounds returns the half-open [start, end) instants of the month in loc.
func (p ReportingPeriod) Bounds(loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func (p ReportingPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Label is the human readable month name, e.g. "June 2025".
func (p ReportingPeriod) Label() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// MarshalJSON encodes the period as its "YYYY-MM" token.
func (p ReportingPeriod) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}
