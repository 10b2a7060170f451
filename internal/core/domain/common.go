package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date format used by entries and periods.
const DateLayout = "2006-01-02"

// ParseDate parses a canonical YYYY-MM-DD calendar date.
// Non-padded forms ("2025-1-5") and impossible dates ("2025-02-30") are rejected.
func ParseDate(value string) (time.Time, error) {
	if len(value) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatDate renders t in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
