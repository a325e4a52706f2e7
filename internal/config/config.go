// Package config declares the application configuration, composed from the
// reusable pkg configs and parsed from the environment in one place.
package config

import (
	"github.com/brightreel/formgate/pkg/httpserver"
	"github.com/brightreel/formgate/pkg/logger"
	"github.com/brightreel/formgate/pkg/mailer"
)

// Provider names for outbound mail transports.
const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

// RouteConfig holds the per-route mail settings: a dedicated credential set
// and destination inbox for each form type.
type RouteConfig struct {
	SMTP mailer.SMTPConfig
	// Inbox is the fixed destination mailbox for this form type.
	Inbox string `env:"INBOX,required"`
}

// Config is the full application configuration.
type Config struct {
	HTTP   httpserver.Config
	Log    logger.Config
	Mailer mailer.Config

	// Provider selects the outbound transport for both routes.
	Provider string `env:"MAILER_PROVIDER" envDefault:"smtp"`

	// Resend is only consulted when Provider is "resend".
	Resend mailer.ResendConfig

	Contact RouteConfig `envPrefix:"CONTACT_"`
	Careers RouteConfig `envPrefix:"CAREERS_"`

	// Environment gates how much transport detail reaches the logs.
	Environment string `env:"APP_ENV" envDefault:"production"`

	// AckEnabled controls the best-effort acknowledgement email to submitters.
	AckEnabled bool `env:"ACK_ENABLED" envDefault:"true"`
}

// Production reports whether the service runs in production mode.
func (c Config) Production() bool {
	return c.Environment == "production"
}
