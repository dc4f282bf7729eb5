// Package domain contains domain entities, value objects, and domain-specific errors.
// This package should have no external dependencies except the standard library.
package domain

import (
	"errors"
	"fmt"
)

// Domain error types for consistent error handling across the application.
// These errors represent business rule violations and domain constraints.

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFilter is returned when a board filter value is neither a
	// valid category nor the "all" sentinel. It indicates a programming
	// error in the caller and must not be treated as "all".
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrConflict is returned when there's a conflict with the current state,
	// such as a profile save racing an outstanding save for the same key.
	ErrConflict = errors.New("conflict")
)

// DomainError wraps a base error with additional context.
// It provides a standard way to add details to domain errors.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewInvalidFilterError creates an invalid filter error for a raw value.
func NewInvalidFilterError(raw string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidFilter,
		Message: "not a category or \"all\": " + raw,
		Field:   "filter",
	}
}

// NewConflictError creates a conflict error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Base:    ErrConflict,
		Message: message,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidFilter checks if an error is an invalid filter error.
func IsInvalidFilter(err error) bool {
	return errors.Is(err, ErrInvalidFilter)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
