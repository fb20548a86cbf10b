// Package error defines domain-specific errors for the spending insights web app.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidMonth is returned when a month parameter is not a valid YYYY-MM value.
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrInvalidAnchor is returned when the history anchor is not a valid YYYY-MM value.
	ErrInvalidAnchor = errors.New("invalid anchor month, expected YYYY-MM")

	// ErrDashboardFetchFailed is returned when the records behind a view could not be loaded.
	ErrDashboardFetchFailed = errors.New("failed to load dashboard data")

	// ErrChartUnavailable is returned when the backend did not produce a chart image.
	ErrChartUnavailable = errors.New("chart unavailable")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth  DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidAnchor DashboardErrorCode = "DSH-010002"

	// Upstream errors (02XXXX)
	ErrCodeDashboardFetchFailed DashboardErrorCode = "DSH-020001"
	ErrCodeChartUnavailable     DashboardErrorCode = "DSH-020002"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
