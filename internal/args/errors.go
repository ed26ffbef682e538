package args

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by the Lookup family when none of the keys is
	// present (or, for the consuming forms, still unused).
	ErrNotFound = errors.New("argument not found")
	// ErrMissingArgument matches every *MissingArgumentError via errors.Is.
	ErrMissingArgument = errors.New("missing required argument")
)

// MissingArgumentError is returned by the Require family.
type MissingArgumentError struct {
	// Keys are the candidate keys as the caller spelled them.
	Keys []string
	// Message is the caller-supplied text, if any. It becomes the whole
	// error string.
	Message string
	// Err is the underlying cause, e.g. a conversion failure.
	Err error
}

// Error implements the error interface for MissingArgumentError.
func (e *MissingArgumentError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	msg := "missing required argument: " + strings.Join(e.Keys, " or ")
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports true for ErrMissingArgument.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// Unwrap returns the underlying cause.
func (e *MissingArgumentError) Unwrap() error {
	return e.Err
}
