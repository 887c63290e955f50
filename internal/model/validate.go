package model

import (
	"fmt"
	"strings"
)

// ValidationError reports a required field that is missing or out of range.
// Validation runs locally, before any network call, so obviously incomplete
// input never costs a round trip.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the fields required for create/update submission.
func (u UserRecord) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ValidationError{Field: "name", Reason: "required"}
	}
	if u.Age <= 0 {
		return ValidationError{Field: "age", Reason: "must be a positive number"}
	}
	if strings.TrimSpace(u.Email) == "" {
		return ValidationError{Field: "email", Reason: "required"}
	}
	return nil
}
