// Package notification turns validated form submissions into outbound email
// messages: a plain-text and an HTML rendering per form, plus a markdown
// acknowledgement template for the submitter.
package notification

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	texttemplate "text/template"

	"github.com/brightreel/formgate/internal/forms"
	"github.com/brightreel/formgate/pkg/mailer"
)

//go:embed templates
var templatesFS embed.FS

// AckTemplate is the markdown template name for the acknowledgement email.
const AckTemplate = "acknowledgement.md"

// placeholder rendered for absent optional fields, so the recipient always
// sees the same layout.
const placeholder = "—"

var funcs = map[string]any{
	"orDash": func(s string) string {
		if s == "" {
			return placeholder
		}
		return s
	},
}

// Templates returns the embedded mail template tree, rooted so the mailer
// renderer finds markdown templates at the top level and layouts under
// layouts/.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Composer renders notification emails from sanitized, validated submissions.
// User-supplied values reach the HTML rendering only through html/template,
// which escapes them on interpolation; the plain-text rendering carries the
// sanitized values verbatim.
type Composer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewComposer parses the embedded notification templates.
func NewComposer() (*Composer, error) {
	text, err := texttemplate.New("notification").Funcs(funcs).ParseFS(templatesFS, "templates/*.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("notification: failed to parse text templates: %w", err)
	}

	html, err := htmltemplate.New("notification").Funcs(funcs).ParseFS(templatesFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("notification: failed to parse html templates: %w", err)
	}

	return &Composer{text: text, html: html}, nil
}

// Contact builds the notification email for a contact enquiry. The reply-to
// is the submitter's address; the envelope sender stays the configured one so
// an arbitrary user-supplied address never becomes the sender.
func (c *Composer) Contact(s forms.ContactSubmission, to string) (*mailer.Email, error) {
	text, html, err := c.render("contact", s)
	if err != nil {
		return nil, err
	}

	return &mailer.Email{
		To:      []string{to},
		ReplyTo: s.Email,
		Subject: fmt.Sprintf("New enquiry from %s", s.Name),
		Text:    text,
		HTML:    html,
	}, nil
}

// Careers builds the notification email for a job application, attaching the
// CV verbatim when present.
func (c *Composer) Careers(s forms.CareersSubmission, to string) (*mailer.Email, error) {
	text, html, err := c.render("careers", s)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("New application from %s", s.Name)
	if s.JobTitle != "" {
		subject = fmt.Sprintf("New application from %s (%s)", s.Name, s.JobTitle)
	}

	email := &mailer.Email{
		To:      []string{to},
		ReplyTo: s.Email,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}

	if s.CV != nil {
		email.Attachments = []mailer.Attachment{{
			Filename:    s.CV.Filename,
			ContentType: s.CV.ContentType,
			Content:     s.CV.Content,
		}}
	}

	return email, nil
}

func (c *Composer) render(name string, data any) (text, html string, err error) {
	var textBuf bytes.Buffer
	if err := c.text.ExecuteTemplate(&textBuf, name+".txt.tmpl", data); err != nil {
		return "", "", fmt.Errorf("notification: failed to render %s text body: %w", name, err)
	}

	var htmlBuf bytes.Buffer
	if err := c.html.ExecuteTemplate(&htmlBuf, name+".html.tmpl", data); err != nil {
		return "", "", fmt.Errorf("notification: failed to render %s html body: %w", name, err)
	}

	return textBuf.String(), htmlBuf.String(), nil
}
