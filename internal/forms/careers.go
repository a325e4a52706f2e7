package forms

import (
	"fmt"
	"slices"
	"strings"

	"github.com/brightreel/formgate/pkg/sanitizer"
	"github.com/brightreel/formgate/pkg/validator"
)

// MaxCVSizeBytes is the upload ceiling for a CV: 5 MiB, inclusive.
const MaxCVSizeBytes = 5 * 1024 * 1024

// AllowedCVTypes are the declared media types accepted for a CV upload.
// The transport-declared type is checked, not the filename extension and not
// the file's magic bytes; see the handler docs for the trade-off.
var AllowedCVTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Attachment is an uploaded file held in memory for the life of the request.
// It is never written to disk or any store.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// CareersSubmission is a job application as posted by the website.
type CareersSubmission struct {
	Name       string
	Email      string
	Portfolio  string
	LinkedIn   string
	GitHub     string
	Experience string
	About      string
	JobTitle   string

	// Website is the honeypot field; humans never see it.
	Website string

	// CV is the uploaded résumé; nil when the part is missing.
	CV *Attachment
}

// Bot reports whether the honeypot field was populated.
func (s CareersSubmission) Bot() bool {
	return strings.TrimSpace(s.Website) != ""
}

// Sanitized returns a cleaned copy of the submission. Single-line fields are
// collapsed; the about text keeps its line breaks since it only ever appears
// in the email body. The CV passes through untouched.
func (s CareersSubmission) Sanitized() CareersSubmission {
	return CareersSubmission{
		Name:       sanitizer.Line(s.Name, maxNameLen),
		Email:      sanitizer.Line(s.Email, maxEmailLen),
		Portfolio:  sanitizer.Line(s.Portfolio, maxURLLen),
		LinkedIn:   sanitizer.Line(s.LinkedIn, maxURLLen),
		GitHub:     sanitizer.Line(s.GitHub, maxURLLen),
		Experience: sanitizer.Line(s.Experience, maxExperience),
		About:      sanitizer.Field(s.About, maxAboutLen),
		JobTitle:   sanitizer.Line(s.JobTitle, maxJobTitleLen),
		CV:         s.CV,
	}
}

// Validate applies the careers form business rules to a sanitized submission,
// including the CV attachment checks. All failures are aggregated.
func (s CareersSubmission) Validate() error {
	rules := []validator.Rule{
		validator.Required("name", s.Name),
		validator.MinLen("name", s.Name, 2),
		validator.Required("email", s.Email),
		validator.Email("email", s.Email),
		validator.Required("experience", s.Experience),
		validator.InList("experience", s.Experience, ExperienceLevels),
		validator.Required("about", s.About),
		validator.MinLen("about", s.About, 10),
		validator.Optional(s.Portfolio, validator.AbsoluteURL("portfolio", s.Portfolio, "http", "https")),
		validator.Optional(s.LinkedIn, validator.AbsoluteURL("linkedin", s.LinkedIn, "http", "https")),
		validator.Optional(s.GitHub, validator.AbsoluteURL("github", s.GitHub, "http", "https")),
	}
	rules = append(rules, cvRules(s.CV)...)
	return validator.Apply(rules...)
}

// cvRules validates the attachment: presence, declared media type membership,
// and the inclusive size ceiling. Errors surface under the "file" field so the
// form can render them next to the upload input.
func cvRules(cv *Attachment) []validator.Rule {
	if cv == nil {
		return []validator.Rule{{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "file", Message: "CV is required"},
		}}
	}

	return []validator.Rule{
		{
			Check: func() bool { return slices.Contains(AllowedCVTypes, cv.ContentType) },
			Error: validator.ValidationError{
				Field:   "file",
				Message: "unsupported file type: CV must be a PDF, DOC or DOCX document",
			},
		},
		{
			Check: func() bool { return cv.Size <= MaxCVSizeBytes },
			Error: validator.ValidationError{
				Field:   "file",
				Message: fmt.Sprintf("file too large: CV must be at most %d MB", MaxCVSizeBytes/(1024*1024)),
			},
		},
	}
}
