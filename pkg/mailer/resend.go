package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// ResendConfig holds Resend API provider configuration.
// Embed it with an envPrefix to configure independent sender identities.
type ResendConfig struct {
	APIKey    string `env:"RESEND_API_KEY"`
	FromEmail string `env:"RESEND_FROM"`
	FromName  string `env:"RESEND_FROM_NAME"`
}

// ResendSender implements Sender using the Resend API, for deployments that
// prefer an HTTP provider over direct SMTP.
type ResendSender struct {
	client *resend.Client
	config ResendConfig
}

// NewResendSender creates a Resend-backed sender.
func NewResendSender(cfg ResendConfig) *ResendSender {
	return &ResendSender{client: resend.NewClient(cfg.APIKey), config: cfg}
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, email *Email) error {
	from := email.From
	if from == "" {
		from = Recipient(s.config.FromName, s.config.FromEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	if len(email.Attachments) > 0 {
		req.Attachments = make([]*resend.Attachment, len(email.Attachments))
		for i, a := range email.Attachments {
			req.Attachments[i] = &resend.Attachment{
				Filename:    a.Filename,
				Content:     a.Content,
				ContentType: a.ContentType,
			}
		}
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}
