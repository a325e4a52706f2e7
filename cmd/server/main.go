package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/brightreel/formgate/internal/config"
	"github.com/brightreel/formgate/internal/handler"
	"github.com/brightreel/formgate/internal/notification"
	envconfig "github.com/brightreel/formgate/pkg/config"
	"github.com/brightreel/formgate/pkg/httpserver"
	"github.com/brightreel/formgate/pkg/logger"
	"github.com/brightreel/formgate/pkg/mailer"
)

func main() {
	var cfg config.Config
	envconfig.MustLoad(&cfg)

	log := logger.New(cfg.Log, handler.RequestIDExtractor())

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	composer, err := notification.NewComposer()
	if err != nil {
		return err
	}
	renderer := mailer.NewRenderer(notification.Templates())

	contactSender, err := newSender(cfg, cfg.Contact)
	if err != nil {
		return fmt.Errorf("contact transport: %w", err)
	}
	careersSender, err := newSender(cfg, cfg.Careers)
	if err != nil {
		return fmt.Errorf("careers transport: %w", err)
	}

	// Transport failures are logged with detail only outside production so
	// hostnames and credentials stay out of aggregated logs.
	logSendErrors := !cfg.Production()

	contact := handler.NewContactHandler(
		mailer.New(contactSender, renderer, cfg.Mailer),
		composer, log, cfg.Contact.Inbox, logSendErrors, cfg.AckEnabled,
	)
	careers := handler.NewCareersHandler(
		mailer.New(careersSender, renderer, cfg.Mailer),
		composer, log, cfg.Careers.Inbox, logSendErrors, cfg.AckEnabled,
	)

	srv := httpserver.New(cfg.HTTP, log)
	return srv.Run(context.Background(), handler.NewRouter(log, contact, careers))
}

// newSender builds the outbound transport for one route. Each route carries
// its own SMTP credentials; the Resend provider is shared.
func newSender(cfg config.Config, route config.RouteConfig) (mailer.Sender, error) {
	switch cfg.Provider {
	case config.ProviderResend:
		return mailer.NewResendSender(cfg.Resend), nil
	case config.ProviderSMTP:
		return mailer.NewSMTPSender(route.SMTP)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
