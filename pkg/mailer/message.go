// Package mailer defines a provider-agnostic outbound email model with
// interchangeable transports (SMTP, Resend) and a markdown template renderer
// for templated messages.
package mailer

import "fmt"

// Email represents a fully-prepared email message ready for sending.
// It is built once per submission and consumed exactly once by a Sender.
type Email struct {
	Subject     string       // Email subject
	HTML        string       // HTML body content
	Text        string       // Plain text alternative
	From        string       // Override default sender (if provider allows)
	ReplyTo     string       // Reply-to address
	To          []string     // Recipients (at least one required)
	Attachments []Attachment // File attachments
}

// Attachment represents an email attachment held fully in memory.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // Declared MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
