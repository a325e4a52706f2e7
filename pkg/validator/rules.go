package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// emailPattern is deliberately conservative: local-part@domain with a TLD of
// at least two letters. It rejects plenty of RFC-valid oddities on purpose,
// since those never show up in legitimate form submissions.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}$`)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MinLen validates that the trimmed value is at least min characters long.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(strings.TrimSpace(value)) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// Email validates the value against the conservative email pattern.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailPattern.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// InList validates membership in a closed set of allowed values.
func InList(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}

// AbsoluteURL validates that the value parses as an absolute URL whose scheme
// is one of the given schemes and which has a host.
func AbsoluteURL(field, value string, schemes ...string) Rule {
	return Rule{
		Check: func() bool {
			u, err := url.Parse(value)
			if err != nil {
				return false
			}
			if u.Host == "" || !slices.Contains(schemes, u.Scheme) {
				return false
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must be a valid absolute URL"},
	}
}

// Optional wraps a rule so it passes when the value is empty. Use for fields
// that are not required but must be well-formed when present.
func Optional(value string, rule Rule) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			return rule.Check()
		},
		Error: rule.Error,
	}
}
