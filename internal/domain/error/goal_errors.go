package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the store.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrMissingGoalName is returned when a goal has no name.
	ErrMissingGoalName = errors.New("goal name is required")

	// ErrInvalidGoalTarget is returned when the target amount is zero or negative.
	ErrInvalidGoalTarget = errors.New("target amount must be greater than zero")

	// ErrInvalidGoalCurrent is returned when the saved amount is negative.
	ErrInvalidGoalCurrent = errors.New("current amount must not be negative")

	// ErrInvalidGoalDeadline is returned when the deadline is not a valid YYYY-MM-DD value.
	ErrInvalidGoalDeadline = errors.New("invalid deadline, expected YYYY-MM-DD")

	// ErrInvalidContribution is returned when a contribution is zero or not a number.
	ErrInvalidContribution = errors.New("contribution must be a non-zero number")

	// ErrGoalAlreadyCompleted is returned when changing the balance of a completed goal.
	ErrGoalAlreadyCompleted = errors.New("goal already completed")

	// ErrGoalStoreUnavailable is returned when the goal store cannot be read or written.
	ErrGoalStoreUnavailable = errors.New("goal store unavailable")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound         GoalErrorCode = "GOL-010001"
	ErrCodeMissingGoalName      GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalTarget    GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalCurrent   GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalDeadline  GoalErrorCode = "GOL-010005"
	ErrCodeInvalidContribution  GoalErrorCode = "GOL-010006"
	ErrCodeGoalAlreadyCompleted GoalErrorCode = "GOL-010007"

	// Storage errors (02XXXX)
	ErrCodeGoalStoreUnavailable GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
