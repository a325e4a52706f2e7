package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/brightreel/formgate/internal/forms"
	"github.com/brightreel/formgate/internal/notification"
	"github.com/brightreel/formgate/pkg/mailer"
	"github.com/brightreel/formgate/pkg/validator"
)

// maxJSONBody bounds the contact request body. The form never legitimately
// approaches this.
const maxJSONBody = 1 << 20

// ContactHandler runs the contact form pipeline:
// parse, honeypot, sanitize, validate, compose, dispatch, respond.
type ContactHandler struct {
	mailer   *mailer.Mailer
	composer *notification.Composer
	log      *slog.Logger
	inbox    string
	logSendErrors bool
	ack           bool
}

// NewContactHandler wires the contact pipeline. logSendErrors controls
// whether transport failure details reach the logs; keep it off in
// production so credentials and hostnames stay out of aggregated logs.
func NewContactHandler(m *mailer.Mailer, c *notification.Composer, log *slog.Logger, inbox string, logSendErrors, ack bool) *ContactHandler {
	return &ContactHandler{
		mailer:        m,
		composer:      c,
		log:           log,
		inbox:         inbox,
		logSendErrors: logSendErrors,
		ack:           ack,
	}
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var sub forms.ContactSubmission
	if err := dec.Decode(&sub); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	// Reject trailing garbage after the JSON object.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		respondBadRequest(w, "invalid request body")
		return
	}

	if sub.Bot() {
		// Bots get the same response as humans, and no email is sent. The
		// hit is logged so a false positive is at least traceable.
		h.log.InfoContext(ctx, "honeypot triggered on contact form")
		respondOK(w)
		return
	}

	clean := sub.Sanitized()
	if err := clean.Validate(); err != nil {
		respondFieldErrors(w, validator.Extract(err).Map())
		return
	}

	email, err := h.composer.Contact(clean, h.inbox)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to compose contact notification", slog.Any("error", err))
		respondServerError(w)
		return
	}

	if err := h.mailer.SendRaw(ctx, email); err != nil {
		if h.logSendErrors {
			h.log.ErrorContext(ctx, "contact notification dispatch failed", slog.Any("error", err))
		} else {
			h.log.ErrorContext(ctx, "contact notification dispatch failed")
		}
		respondServerError(w)
		return
	}

	if h.ack {
		sendAcknowledgement(ctx, h.mailer, h.log, clean.Email, clean.Name)
	}

	respondOK(w)
}
