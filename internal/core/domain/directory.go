package domain

import "strings"

// Resident is the directory view of a group-home resident as consumed by the ledger.
type Resident struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	GroupHomeID *int64 `json:"groupHomeId"`
}

// FullName joins first and last name.
func (r Resident) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Staff is the directory view of a staff member, used for attribution display only.
type Staff struct {
	ID        StaffID `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
}

// FullName joins first and last name.
func (s Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// ResidentUpdate is a partial update of a resident record. Only non-nil fields are written;
// nil fields leave the stored value untouched.
type ResidentUpdate struct {
	FirstName   *string
	LastName    *string
	GroupHomeID *int64
}

// IsEmpty reports whether the update carries no field at all.
func (u ResidentUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.GroupHomeID == nil
}

// Apply returns a copy of r with the present fields overwritten.
func (u ResidentUpdate) Apply(r Resident) Resident {
	if u.FirstName != nil {
		r.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		r.LastName = *u.LastName
	}
	if u.GroupHomeID != nil {
		r.GroupHomeID = u.GroupHomeID
	}
	return r
}
