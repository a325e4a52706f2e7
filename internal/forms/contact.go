package forms

import (
	"strings"

	"github.com/brightreel/formgate/pkg/sanitizer"
	"github.com/brightreel/formgate/pkg/validator"
)

// ContactSubmission is a contact form enquiry as posted by the website.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`

	// Website is the honeypot field; humans never see it.
	Website string `json:"website"`
}

// Bot reports whether the honeypot field was populated. Checked on the raw
// submission before any other processing.
func (s ContactSubmission) Bot() bool {
	return strings.TrimSpace(s.Website) != ""
}

// Sanitized returns a cleaned copy of the submission. Every contact field is
// forced to a single line since name and email feed SMTP headers and the
// notification renders the message line by line.
func (s ContactSubmission) Sanitized() ContactSubmission {
	return ContactSubmission{
		Name:    sanitizer.Line(s.Name, maxNameLen),
		Email:   sanitizer.Line(s.Email, maxEmailLen),
		Company: sanitizer.Line(s.Company, maxCompanyLen),
		Service: sanitizer.Line(s.Service, maxServiceLen),
		Message: sanitizer.Line(s.Message, maxMessageLen),
	}
}

// Validate applies the contact form business rules to a sanitized submission.
// Every failing field is reported; a nil result means the submission may be
// composed and dispatched.
func (s ContactSubmission) Validate() error {
	return validator.Apply(
		validator.Required("name", s.Name),
		validator.MinLen("name", s.Name, 2),
		validator.Required("email", s.Email),
		validator.Email("email", s.Email),
		validator.Required("message", s.Message),
		validator.MinLen("message", s.Message, 10),
		validator.Optional(s.Service, validator.InList("service", s.Service, ServiceCatalog)),
	)
}
