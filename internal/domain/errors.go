package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUserNotFound = errors.New("user not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
	ErrNotVerified  = errors.New("account not verified")
	ErrConflict     = errors.New("conflict with current state")
)

// ValidationError carries field-scoped validation messages, the shape the API
// returns as a 400 body: {"field": ["message", ...]}.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{Fields: map[string][]string{}}
	e.Add(field, message)
	return e
}

// Add appends a message for a field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no field has a message yet.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// RequireAll adds a "this field is required" message for every blank value.
// Returns nil when everything is present.
func RequireAll(values map[string]string) *ValidationError {
	e := &ValidationError{}
	for field, value := range values {
		if strings.TrimSpace(value) == "" {
			e.Add(field, "This field is required.")
		}
	}
	if e.Empty() {
		return nil
	}
	return e
}

// DuplicateFieldError reports a uniqueness-constraint violation on a specific
// field (email, phone, business_name, reg_no, ...), surfaced per-field rather
// than as an opaque conflict.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate value for unique field %q", e.Field)
}

// AsValidation renders the duplicate as a field-scoped message, matching the
// registration API contract.
func (e *DuplicateFieldError) AsValidation(entity string) *ValidationError {
	return NewValidationError(e.Field, fmt.Sprintf("A %s is already registered with this %s.", entity, e.Field))
}
