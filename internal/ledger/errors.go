package ledger

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("invalid expense input")

// ValidationError reports user input that was rejected before any mutation.
type ValidationError struct {
	// Field is the input field at fault: description, amount, paid_by or split_with.
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UnresolvedReferenceError reports a member key that no longer resolves.
// Callers rendering expense lists degrade to UnknownMemberName instead of failing.
type UnresolvedReferenceError struct {
	Key string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("member not found: %q", e.Key)
}
