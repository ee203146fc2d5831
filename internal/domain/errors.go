package domain

import (
	"errors"
	"fmt"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrThemeNotFound = errors.New("tenant theme not found")
)

// ValidationError reports a submission that failed the required-field
// policy. It carries a user-facing message and never reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PersistenceError reports a failed store write. Partial and abandoned
// writes swallow it; completed writes surface it with a retry affordance.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ConfigurationError reports an unreachable or unconfigured store
// collaborator. Clients treat it like a PersistenceError; it is only
// logged server-side.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }
