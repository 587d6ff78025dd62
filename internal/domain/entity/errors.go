package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateEmail indicates that a user with the same email already exists.
	// The unique constraint on users.email is the source of truth; repositories
	// map the constraint violation to this error.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrAuthorNotFound indicates that a referenced author does not exist.
	// Repositories map the posts.author_id foreign key violation to this error.
	ErrAuthorNotFound = errors.New("author not found")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures so that a single
// request can report every invalid field at once.
type ValidationErrors []*ValidationError

// Error returns the first field error message, satisfying the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Error()
}

// AsValidationErrors unwraps err into a ValidationErrors slice.
// A single ValidationError is promoted to a one-element slice.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var many ValidationErrors
	if errors.As(err, &many) {
		return many, true
	}
	var one *ValidationError
	if errors.As(err, &one) {
		return ValidationErrors{one}, true
	}
	return nil, false
}
