// Package sanitizer cleans untrusted form input before it is validated or
// interpolated into outbound email. Sanitization here is about neutralizing
// content (markup, line breaks, excessive length); judging correctness of the
// cleaned values is the validator's job.
package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

func initPolicy() {
	initOnce.Do(func() {
		// Strips ALL HTML, leaving plain text only.
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripTags removes all HTML markup from s and returns plain text.
// Bluemonday entity-escapes the characters it keeps, so the output is
// unescaped back to literal text; the result is suitable for a plain-text
// email body and must still be HTML-escaped before HTML interpolation.
func StripTags(s string) string {
	initPolicy()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// SingleLine collapses any run of CR/LF characters into a single space.
// Values that end up in SMTP headers (names, addresses, subjects) must pass
// through this to close off header injection.
func SingleLine(s string) string {
	return lineBreaks.ReplaceAllString(s, " ")
}

// Truncate caps s at max runes. Non-positive max leaves s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Field cleans a free-form value: markup stripped, trimmed, capped at max runes.
// Line breaks are preserved, so use this only for body-bound multiline fields.
func Field(raw string, max int) string {
	return strings.TrimSpace(Truncate(strings.TrimSpace(StripTags(raw)), max))
}

// Line cleans a single-line value: markup stripped, CR/LF collapsed to spaces,
// trimmed, capped at max runes.
func Line(raw string, max int) string {
	return strings.TrimSpace(Truncate(strings.TrimSpace(SingleLine(StripTags(raw))), max))
}
