package adapter

import (
	"context"
)

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To          string
	Name        string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailRenderer renders a named email template into its HTML and plain text bodies.
type EmailRenderer interface {
	Render(templateName string, data any) (html string, text string, err error)
}
