package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrServiceNotFound = errors.New("service not found")
	ErrRequestNotFound = errors.New("service request not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrMessageNotFound = errors.New("message not found")

	// ErrForbidden is returned whenever the authorization policy denies an
	// operation. It is never a silent no-op.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidCredentials covers both unknown-email and wrong-password login
	// failures so the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAlreadyProcessed is returned when approving or rejecting a service
	// request that has already left the Pending state.
	ErrAlreadyProcessed = errors.New("service request has already been processed")

	// ErrInvalidStatus is returned when a status value outside the allowed
	// set is written to a project.
	ErrInvalidStatus = errors.New("invalid project status")
)

// ValidationError reports missing or invalid user-supplied fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError builds a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
