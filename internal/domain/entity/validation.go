package entity

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Field length limits enforced before any row is inserted.
const (
	maxNameLength  = 100
	maxEmailLength = 255
	maxTitleLength = 255
)

// ValidateUser checks the user fields against the domain rules:
// name 1-100 characters, email well-formed and at most 255 characters.
// All failing fields are reported, not just the first one.
func ValidateUser(name, email string) error {
	var errs ValidationErrors

	if name == "" {
		errs = append(errs, &ValidationError{Field: "name", Message: "is required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must not exceed %d characters", maxNameLength),
		})
	}

	if err := validateEmail(email); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidatePost checks the post fields against the domain rules:
// title 1-255 characters, content non-empty, authorId a well-formed UUID.
// The author's existence is not checked here; the store's foreign key is
// the authority for that.
func ValidatePost(title, content, authorID string) error {
	var errs ValidationErrors

	if title == "" {
		errs = append(errs, &ValidationError{Field: "title", Message: "is required"})
	} else if len(title) > maxTitleLength {
		errs = append(errs, &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		})
	}

	if content == "" {
		errs = append(errs, &ValidationError{Field: "content", Message: "is required"})
	}

	if authorID == "" {
		errs = append(errs, &ValidationError{Field: "authorId", Message: "is required"})
	} else if err := ValidateID(authorID); err != nil {
		errs = append(errs, &ValidationError{Field: "authorId", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateID checks that id is a well-formed UUID.
// IDs are generated by the store, so anything else can be rejected before a query.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &ValidationError{Field: "id", Message: "must be a valid UUID"}
	}
	return nil
}

func validateEmail(email string) *ValidationError {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(email) > maxEmailLength {
		return &ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("must not exceed %d characters", maxEmailLength),
		}
	}
	// mail.ParseAddress accepts the "Name <addr>" form; reject that so only
	// bare addresses pass.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}
