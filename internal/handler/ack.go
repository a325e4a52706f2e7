package handler

import (
	"context"
	"html"
	"log/slog"

	"github.com/brightreel/formgate/internal/notification"
	"github.com/brightreel/formgate/pkg/mailer"
)

// sendAcknowledgement sends the thank-you email to the submitter. It is best
// effort: a failure is logged and never changes the HTTP response, since the
// notification to the agency already went out.
func sendAcknowledgement(ctx context.Context, m *mailer.Mailer, log *slog.Logger, to, name string) {
	err := m.Send(ctx, mailer.SendParams{
		To:       to,
		Template: notification.AckTemplate,
		Data: map[string]string{
			// The renderer interpolates data into markdown verbatim, so the
			// already-sanitized name is escaped once more for the HTML path.
			"Name": html.EscapeString(name),
		},
	})
	if err != nil {
		log.WarnContext(ctx, "acknowledgement email failed", slog.Any("error", err))
	}
}
