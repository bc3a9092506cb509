package models

// Resident is a row of residents.
type Resident struct {
	ID          int64  `db:"id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	GroupHomeID *int64 `db:"group_home_id"`
}

// Staff is a row of staff.
type Staff struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}
