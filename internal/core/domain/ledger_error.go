package domain

import "fmt"

// ErrorCode classifies a business-rule violation or posting failure.
type ErrorCode string

const (
	ErrCodeUnbalanced      ErrorCode = "UNBALANCED"
	ErrCodeInvalidAccount  ErrorCode = "INVALID_ACCOUNT"
	ErrCodePeriodClosed    ErrorCode = "PERIOD_CLOSED"
	ErrCodeNegativeAmount  ErrorCode = "NEGATIVE_AMOUNT"
	ErrCodeAmbiguousLine   ErrorCode = "AMBIGUOUS_LINE"
	ErrCodeEmptyLines      ErrorCode = "EMPTY_LINES"
	ErrCodeAlreadyReversed ErrorCode = "ALREADY_REVERSED"
	ErrCodeDBError         ErrorCode = "DB_ERROR"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
)

// LedgerError is a single violated rule with a human readable message.
type LedgerError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// NewLedgerError builds a LedgerError with a formatted message.
func NewLedgerError(code ErrorCode, format string, args ...any) LedgerError {
	return LedgerError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e LedgerError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// PostResult is the outcome of posting or reversing an entry.
type PostResult struct {
	Success  bool          `json:"success"`
	EntryID  *int64        `json:"entryID,omitempty"`
	Protocol string        `json:"protocol,omitempty"`
	Errors   []LedgerError `json:"errors,omitempty"`
}

// PostedResult is a successful result for the given entry.
func PostedResult(entryID int64, protocol string) PostResult {
	return PostResult{Success: true, EntryID: &entryID, Protocol: protocol}
}

// FailedResult is an unsuccessful result carrying errs.
func FailedResult(errs ...LedgerError) PostResult {
	return PostResult{Success: false, Errors: errs}
}

// HasCode reports whether any of the result errors carries code.
func (r PostResult) HasCode(code ErrorCode) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}
