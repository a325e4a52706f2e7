package handler

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/brightreel/formgate/internal/forms"
	"github.com/brightreel/formgate/internal/notification"
	"github.com/brightreel/formgate/pkg/mailer"
	"github.com/brightreel/formgate/pkg/validator"
)

// maxMultipartBody bounds the careers request body: the 5 MiB CV ceiling
// plus generous headroom for the text fields and multipart framing.
const maxMultipartBody = 8 << 20

// multipartMemory is how much of the parsed form is kept in memory before
// spilling to temp files.
const multipartMemory = 8 << 20

// CareersHandler runs the job application pipeline. Identical shape to the
// contact pipeline plus the CV attachment handling.
type CareersHandler struct {
	mailer        *mailer.Mailer
	composer      *notification.Composer
	log           *slog.Logger
	inbox         string
	logSendErrors bool
	ack           bool
}

// NewCareersHandler wires the careers pipeline.
func NewCareersHandler(m *mailer.Mailer, c *notification.Composer, log *slog.Logger, inbox string, logSendErrors, ack bool) *CareersHandler {
	return &CareersHandler{
		mailer:        m,
		composer:      c,
		log:           log,
		inbox:         inbox,
		logSendErrors: logSendErrors,
		ack:           ack,
	}
}

func (h *CareersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBody)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	sub := forms.CareersSubmission{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Portfolio:  r.FormValue("portfolio"),
		LinkedIn:   r.FormValue("linkedin"),
		GitHub:     r.FormValue("github"),
		Experience: r.FormValue("experience"),
		About:      r.FormValue("about"),
		JobTitle:   r.FormValue("jobTitle"),
		Website:    r.FormValue("website"),
	}

	if sub.Bot() {
		h.log.InfoContext(ctx, "honeypot triggered on careers form")
		respondOK(w)
		return
	}

	cv, err := readCV(r)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	sub.CV = cv

	clean := sub.Sanitized()
	if err := clean.Validate(); err != nil {
		respondFieldErrors(w, validator.Extract(err).Map())
		return
	}

	email, err := h.composer.Careers(clean, h.inbox)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to compose careers notification", slog.Any("error", err))
		respondServerError(w)
		return
	}

	if err := h.mailer.SendRaw(ctx, email); err != nil {
		if h.logSendErrors {
			h.log.ErrorContext(ctx, "careers notification dispatch failed", slog.Any("error", err))
		} else {
			h.log.ErrorContext(ctx, "careers notification dispatch failed")
		}
		respondServerError(w)
		return
	}

	if h.ack {
		sendAcknowledgement(ctx, h.mailer, h.log, clean.Email, clean.Name)
	}

	respondOK(w)
}

// readCV pulls the uploaded file into memory. A missing part is not an error
// here; the validator reports it as a field error so it lands next to the
// other form problems. The media type is the transport-declared one, not a
// sniffed one.
func readCV(r *http.Request) (*forms.Attachment, error) {
	file, header, err := r.FormFile("cv")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	return &forms.Attachment{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     content,
	}, nil
}
