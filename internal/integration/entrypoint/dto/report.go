package dto

// EmailReportRequest represents the request body for emailing the history report.
type EmailReportRequest struct {
	Anchor string `json:"anchor"`
	To     string `json:"to" binding:"omitempty,email"`
	Format string `json:"format" binding:"omitempty,oneof=csv xlsx"`
}

// EmailReportResponse acknowledges a sent report.
type EmailReportResponse struct {
	MessageID string `json:"message_id"`
	To        string `json:"to"`
}
