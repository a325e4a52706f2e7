package mailer

import "context"

// Sender is the minimal interface an email transport must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
// Implementations must be safe for concurrent use.
type Sender interface {
	// Send delivers an email message.
	// The Email must have To, Subject, and a body already set.
	Send(ctx context.Context, email *Email) error
}
