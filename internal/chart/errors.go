package chart

import (
	"errors"
	"fmt"
)

// ErrInvalidInput classifies every hard input failure.
var ErrInvalidInput = errors.New("invalid input")

// ErrorKind is a coarse-grained categorization for input errors.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindNotFound     ErrorKind = "not_found"
)

// InputError wraps an underlying error with operation context and a kind.
type InputError struct {
	Op    string
	Kind  ErrorKind
	Field string // Optional: offending document field
	Path  string // Optional: source file
	Err   error
}

func (e *InputError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}

	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}

	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Is lets errors.Is(err, ErrInvalidInput) match any invalid-input InputError.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput && e != nil && e.Kind == KindInvalidInput
}

// IsKind helps callers classify errors without type assertions.
func IsKind(err error, kind ErrorKind) bool {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Kind == kind
	}

	return false
}

func invalid(op, field string, err error) *InputError {
	return &InputError{Op: op, Kind: KindInvalidInput, Field: field, Err: err}
}
