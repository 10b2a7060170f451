package models

import "database/sql"

// Account is the database representation of a chart of accounts row.
type Account struct {
	Code       string         `db:"code"`
	Name       string         `db:"name"`
	Class      string         `db:"class"`
	ParentCode sql.NullString `db:"parent_code"` // Nullable
}
