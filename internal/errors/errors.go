// Package errors provides sentinel errors, structured error details and exit
// codes for the bundlesmith CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates user input that failed a syntactic rule.
	ErrValidation = errors.New("validation error")

	// ErrFilesystem indicates a directory or file could not be created, read or written.
	ErrFilesystem = errors.New("filesystem error")

	// ErrPermission indicates insufficient permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, catalog, or config file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending file or directory path (optional).
	Location string

	// Field is the input field name for validation errors (optional).
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

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
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

// NewValidationError creates a validation error for a named input field.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewFilesystemError creates a filesystem error naming the offending path.
// The returned error matches both ErrFilesystem and cause. A cause denied by
// the operating system becomes a permission error instead.
func NewFilesystemError(message, location string, cause error) error {
	if errors.Is(cause, fs.ErrPermission) {
		return NewPermissionError(message, location, cause)
	}
	wrapped := ErrFilesystem
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrFilesystem, cause)
	}
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  message,
		Location: location,
		Cause:    wrapped,
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

// NewPermissionError creates a permission denied error for location.
// It matches ErrPermission, ErrFilesystem and cause.
func NewPermissionError(message, location string, cause error) error {
	wrapped := fmt.Errorf("%w: %w", ErrPermission, ErrFilesystem)
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w: %w", ErrPermission, ErrFilesystem, cause)
	}
	return &DetailError{
		Type:     "permission denied",
		Message:  message,
		Location: location,
		Hint:     "Check that the project directory is writable by the current user",
		Cause:    wrapped,
	}
}
