package interfaces

import "context"

// Attachment is a file attached to an outgoing mail, typically the quote PDF.
type Attachment struct {
	Filename string
	Content  []byte
}

// MailMessage is the transport-agnostic outgoing mail.
type MailMessage struct {
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// IMailer abstracts the SMTP transport. Implementations handle their own
// retries; a send that still fails after retrying returns the last error.
type IMailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
