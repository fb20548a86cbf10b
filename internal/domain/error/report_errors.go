package error

import "errors"

// Report domain errors.
var (
	// ErrUnsupportedReportFormat is returned when the requested export format is unknown.
	ErrUnsupportedReportFormat = errors.New("unsupported report format, expected csv or xlsx")

	// ErrReportRenderFailed is returned when a report file cannot be produced.
	ErrReportRenderFailed = errors.New("failed to render report")

	// ErrMissingReportRecipient is returned when no recipient is given or configured.
	ErrMissingReportRecipient = errors.New("report recipient is required")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnsupportedReportFormat ReportErrorCode = "RPT-010001"
	ErrCodeMissingReportRecipient  ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportAnchor     ReportErrorCode = "RPT-010003"

	// Render errors (02XXXX)
	ErrCodeReportRenderFailed ReportErrorCode = "RPT-020001"
	ErrCodeReportFetchFailed  ReportErrorCode = "RPT-020002"
	ErrCodeReportSendFailed   ReportErrorCode = "RPT-020003"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
