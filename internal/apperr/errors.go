// Package apperr defines the error taxonomy shared by all modules.
//
// Module packages declare their own sentinels wrapping one of the categories
// below, so callers can match either the precise error or its category with
// errors.Is.
package apperr

import (
	"errors"
	"strings"
)

var (
	// ErrValidationFailed is the category of structural or uniqueness rule violations.
	ErrValidationFailed = errors.New("validation failed")
	// ErrNotFound is the category of missing or soft-deleted entities.
	ErrNotFound = errors.New("not found")
	// ErrConflictOnCreate is the category of create races lost to a concurrent request.
	ErrConflictOnCreate = errors.New("conflict on create")
	// ErrInvalidState is the category of operations not allowed in the entity's current state.
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError carries every violation found for a rejected write, in rule order.
type ValidationError struct {
	Violations []string
}

// NewValidationError creates a validation error for the given violations.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Violations, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Violations returns the violation list carried by err, or nil if err is not a validation error.
func Violations(err error) []string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Violations
	}
	return nil
}
