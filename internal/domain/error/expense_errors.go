package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when the backend has no expense with the given ID.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the amount is missing, zero or negative.
	ErrInvalidExpenseAmount = errors.New("amount must be greater than zero")

	// ErrInvalidExpenseDate is returned when the date is not a valid YYYY-MM-DD value.
	ErrInvalidExpenseDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidExpenseMonth is returned when a month filter is not a valid YYYY-MM value.
	ErrInvalidExpenseMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrMissingExpenseCategory is returned when a new expense has no category.
	ErrMissingExpenseCategory = errors.New("category is required")

	// ErrMissingExpenseID is returned when an update or delete has no expense ID.
	ErrMissingExpenseID = errors.New("expense id is required")

	// ErrExpenseWriteFailed is returned when the backend rejected a write.
	ErrExpenseWriteFailed = errors.New("failed to save expense")

	// ErrResetInterrupted is returned when a month reset stops before every record was deleted.
	ErrResetInterrupted = errors.New("month reset interrupted")

	// ErrExportFailed is returned when the backend CSV export could not be downloaded.
	ErrExportFailed = errors.New("failed to export expenses")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound        ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate     ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingExpenseCategory ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseID       ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidExpenseMonth    ExpenseErrorCode = "EXP-010006"

	// Upstream errors (02XXXX)
	ErrCodeExpenseWriteFailed ExpenseErrorCode = "EXP-020001"
	ErrCodeExpenseFetchFailed ExpenseErrorCode = "EXP-020002"
	ErrCodeExportFailed       ExpenseErrorCode = "EXP-020003"
	ErrCodeResetInterrupted   ExpenseErrorCode = "EXP-020004"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
