// Package forms holds the submission types for the public website forms and
// their sanitization and validation pipelines. Submissions are transient:
// parsed from the request, cleaned, validated, rendered into a notification
// email, and discarded.
package forms

// honeypotField is present in the markup but never visible to a human; only
// automated form-fillers populate it.
const honeypotField = "website"

// Per-field length caps applied during sanitization.
const (
	maxNameLen     = 120
	maxEmailLen    = 254
	maxCompanyLen  = 200
	maxServiceLen  = 100
	maxMessageLen  = 4000
	maxURLLen      = 512
	maxExperience  = 60
	maxAboutLen    = 4000
	maxJobTitleLen = 150
)

// ServiceCatalog is the closed set of services a contact enquiry may select.
var ServiceCatalog = []string{
	"Marketing Strategy",
	"Brand Identity",
	"Content Creation",
	"Filming & Production",
	"Social Media",
	"Other",
}

// ExperienceLevels is the closed set of experience ranges an applicant may
// declare.
var ExperienceLevels = []string{
	"Fresher",
	"1-3 Years",
	"3-5 Years",
	"5+ Years",
	"Currently Attending College",
}
