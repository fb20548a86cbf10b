package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidBudgetAmount is returned when a budget amount is negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must not be negative")

	// ErrInvalidBudgetMonth is returned when the budget month is not a valid YYYY-MM value.
	ErrInvalidBudgetMonth = errors.New("invalid budget month, expected YYYY-MM")

	// ErrBudgetWriteFailed is returned when the backend rejected a budget upsert.
	ErrBudgetWriteFailed = errors.New("failed to save budget")

	// ErrBudgetAnalysisFailed is returned when the backend analysis could not be fetched.
	ErrBudgetAnalysisFailed = errors.New("failed to load budget analysis")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetMonth  BudgetErrorCode = "BDG-010002"

	// Upstream errors (02XXXX)
	ErrCodeBudgetWriteFailed    BudgetErrorCode = "BDG-020001"
	ErrCodeBudgetAnalysisFailed BudgetErrorCode = "BDG-020002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
