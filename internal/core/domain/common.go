package domain

import "time"

// StaffID identifies the staff member a ledger row is attributed to.
type StaffID int64

// SystemAttribution is the attribution used when no specific staff member triggered a
// ledger write, e.g. the credit leg of an allowance opened by an automated process.
const SystemAttribution StaffID = 0

// IsSystem reports whether the id is the system attribution.
func (id StaffID) IsSystem() bool {
	return id == SystemAttribution
}

// DateOf truncates t to its calendar date in loc. The result is midnight UTC of that date,
// which is how DATE columns round-trip through pgx.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"
