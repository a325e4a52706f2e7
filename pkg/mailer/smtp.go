package mailer

import (
	"bytes"
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

// implicitTLSPort is the well-known SMTPS port. Connections to it speak TLS
// from the first byte; every other port starts plain and upgrades via
// STARTTLS when the server offers it.
const implicitTLSPort = 465

// SMTPConfig holds SMTP transport configuration.
// Embed it with an envPrefix to configure independent credential sets.
type SMTPConfig struct {
	Host      string `env:"SMTP_HOST"`
	Port      int    `env:"SMTP_PORT" envDefault:"587"`
	Username  string `env:"SMTP_USER"`
	Password  string `env:"SMTP_PASS"`
	FromEmail string `env:"SMTP_FROM"`
	FromName  string `env:"SMTP_FROM_NAME"`
}

// SMTPSender implements Sender over a single long-lived go-mail client.
// The client is created once and reused for every send; connection handling
// and timeouts are the transport library's responsibility.
type SMTPSender struct {
	client *mail.Client
	config SMTPConfig
}

// NewSMTPSender creates an SMTP sender from cfg. The connection security mode
// is derived from the port: implicit TLS on 465, opportunistic STARTTLS
// otherwise.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp: host is not configured")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("smtp: sender address is not configured")
	}

	opts := []mail.Option{mail.WithPort(cfg.Port)}

	if cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to create client: %w", err)
	}

	return &SMTPSender{client: client, config: cfg}, nil
}

// Send implements Sender.
func (s *SMTPSender) Send(ctx context.Context, email *Email) error {
	msg := mail.NewMsg()

	from := email.From
	if from == "" {
		from = Recipient(s.config.FromName, s.config.FromEmail)
	}
	if err := msg.From(from); err != nil {
		return fmt.Errorf("smtp: invalid sender address: %w", err)
	}
	if err := msg.To(email.To...); err != nil {
		return fmt.Errorf("smtp: invalid recipient address: %w", err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return fmt.Errorf("smtp: invalid reply-to address: %w", err)
		}
	}

	msg.Subject(email.Subject)
	if email.Text != "" {
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		if email.HTML != "" {
			msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
		}
	} else {
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	}

	for _, a := range email.Attachments {
		err := msg.AttachReader(a.Filename, bytes.NewReader(a.Content),
			mail.WithFileContentType(mail.ContentType(a.ContentType)))
		if err != nil {
			return fmt.Errorf("smtp: failed to attach %s: %w", a.Filename, err)
		}
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return nil
}
