package error

import (
	"errors"
	"fmt"
)

// Backend errors.
var (
	// ErrBackendUnavailable is returned when the expense backend cannot be reached.
	ErrBackendUnavailable = errors.New("expense backend unavailable")

	// ErrBackendNotFound is returned when the backend answers 404.
	ErrBackendNotFound = errors.New("resource not found on backend")

	// ErrBackendRejected is returned when the backend answers a 4xx other than 404.
	ErrBackendRejected = errors.New("request rejected by backend")

	// ErrBackendMalformedResponse is returned when a response body cannot be decoded.
	ErrBackendMalformedResponse = errors.New("malformed backend response")
)

// BackendErrorCode defines error codes for backend errors.
// Format: BKD-XXYYYY where XX is category and YYYY is specific error.
type BackendErrorCode string

const (
	ErrCodeBackendUnavailable BackendErrorCode = "BKD-020001"
	ErrCodeBackendNotFound    BackendErrorCode = "BKD-020002"
	ErrCodeBackendRejected    BackendErrorCode = "BKD-020003"
	ErrCodeBackendMalformed   BackendErrorCode = "BKD-020004"
)

// BackendError describes a failed call to the expense backend.
type BackendError struct {
	Code       BackendErrorCode
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Method, e.Path)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a new BackendError.
func NewBackendError(code BackendErrorCode, method, path string, status int, message string, err error) *BackendError {
	return &BackendError{
		Code:       code,
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    message,
		Err:        err,
	}
}
