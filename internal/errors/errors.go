// Package errors provides sentinel errors and structured error types for the
// shipwright engine and CLI.
//
// Content-pipeline failures (unreadable files, malformed JSON, schema or
// version violations) are represented as DetailError values wrapping a
// sentinel, collected into load reports, and never abort a load. Assembly
// rule violations are not errors at all; they surface as diagnostics on the
// assembly result.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known failure lanes.
var (
	// ErrValidation indicates a content schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrParse indicates malformed JSON in a content file.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates a structurally valid file that violates the
	// content schema (unknown category, bad size, missing field).
	ErrSchema = errors.New("schema error")

	// ErrVersion indicates an unsupported content schema version.
	ErrVersion = errors.New("version error")

	// ErrIO indicates an unreadable file or directory.
	ErrIO = errors.New("io error")

	// ErrDuplicateID indicates a second occurrence of an id within one load.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrNotFound indicates a hull, component, design, or file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path and optional line or byte offset (optional).
	Location string

	// Field is the field name for schema errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewParseError creates a parse error carrying the file location.
func NewParseError(message, location string) error {
	return &DetailError{
		Type:     "parse failed",
		Message:  message,
		Location: location,
		Cause:    ErrParse,
	}
}

// NewSchemaError creates a schema error for a content file field.
func NewSchemaError(message, location, field string) error {
	return &DetailError{
		Type:     "schema violation",
		Message:  message,
		Location: location,
		Field:    field,
		Cause:    ErrSchema,
	}
}

// NewVersionError creates an unsupported-schema-version error.
func NewVersionError(message, location string, version, supported int) error {
	return &DetailError{
		Type:     "unsupported schema version",
		Message:  message,
		Location: location,
		Context: map[string]string{
			"version":   fmt.Sprintf("%d", version),
			"supported": fmt.Sprintf("<= %d", supported),
		},
		Cause: ErrVersion,
	}
}

// NewIOError creates an io error carrying the file location.
func NewIOError(message, location string, cause error) error {
	return &DetailError{
		Type:     "io failure",
		Message:  message,
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// NewDuplicateIDError creates an error for an id that occurred earlier in the
// same load pass. Location points at the losing file, firstLocation at the
// file that claimed the id.
func NewDuplicateIDError(id, location, firstLocation string) error {
	return &DetailError{
		Type:     "duplicate id",
		Message:  fmt.Sprintf("id %q already loaded from %s; this occurrence is skipped", id, firstLocation),
		Location: location,
		Context: map[string]string{
			"id": id,
		},
		Cause: ErrDuplicateID,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
