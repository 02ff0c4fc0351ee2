// Package apperr defines the error taxonomy shared by services and
// handlers. Every failure is per-operation and recoverable; services never
// leave partial writes behind.
package apperr

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermission means the actor does not own the resource it is mutating.
	ErrPermission = errors.New("permission denied")
	// ErrInvalidTransition means the requested item status is not reachable
	// from the current one under the toggle rule.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrSlugExhausted means slug disambiguation ran out of attempts.
	ErrSlugExhausted = errors.New("could not derive a unique slug")
	// ErrInvalidCredentials covers both unknown user and wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken means the refresh token is unknown, revoked or expired.
	ErrInvalidToken = errors.New("invalid or expired refresh token")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures for one request. It is
// always produced before any persistence attempt.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidation builds a single-field validation error.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ConflictError is a uniqueness collision surfaced as a field error
// (username/email). Slug collisions are recovered internally instead.
type ConflictError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConflictError) Error() string {
	return e.Field + ": " + e.Message
}

// AsConflict unwraps err into a *ConflictError if it is one.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
