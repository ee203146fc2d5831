package domain

import "strings"

// ValidateSubmission enforces the required-field policy for the completed
// path: the name must contain at least two whitespace-separated tokens
// (first and last name) and the email must be non-empty.
func ValidateSubmission(f LeadFields) error {
	if len(strings.Fields(f.FullName)) < 2 {
		return &ValidationError{Message: "Please provide your first and last name."}
	}
	if strings.TrimSpace(f.Email) == "" {
		return &ValidationError{Message: "Please provide your e-mail address."}
	}
	return nil
}

// ValidateProgress enforces the looser bar for partial and abandoned
// writes: at least one tracked field must carry a value, otherwise there
// is nothing to persist.
func ValidateProgress(f LeadFields) error {
	if f.Empty() {
		return &ValidationError{Message: "At least one field is required."}
	}
	return nil
}
