// Package validator provides composable field validation rules that aggregate
// every failure in one pass, so callers can report all problems at once.
package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed rule for one field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is a collection of validation errors. It implements the
// error interface so it can travel through normal error returns.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the given field has any errors.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the first error message for a field, or "" if the field is clean.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Map returns a field-to-message mapping keeping the first message per field.
func (ve ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(ve))
	for _, err := range ve {
		if _, ok := m[err.Field]; !ok {
			m[err.Field] = err.Message
		}
	}
	return m
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes all rules and returns the aggregated failures, or nil when
// every rule passes. Rules are never short-circuited.
func Apply(rules ...Rule) error {
	var ve ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			ve = append(ve, rule.Error)
		}
	}

	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// Extract pulls ValidationErrors out of an error chain.
// Returns nil if err carries no validation errors.
func Extract(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
