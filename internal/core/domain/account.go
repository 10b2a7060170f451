package domain

// AccountClass defines the fundamental accounting class of an account.
type AccountClass string

const (
	Asset     AccountClass = "A"
	Liability AccountClass = "P"
	Equity    AccountClass = "N"
	Cost      AccountClass = "C"
	Revenue   AccountClass = "R"
)

// IsValid reports whether the class is one of the known account classes.
func (c AccountClass) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Cost, Revenue:
		return true
	}
	return false
}

// Account represents an entry of the chart of accounts.
// Accounts are loaded at bootstrap and are effectively immutable afterwards.
type Account struct {
	Code       string       `json:"code"`                 // Primary Key (e.g., "1431")
	Name       string       `json:"name"`                 // Display name
	Class      AccountClass `json:"class"`                // A, P, N, C or R
	ParentCode *string      `json:"parentCode,omitempty"` // Nullable FK -> accounts.code (Self-referencing)
}
