package tui

import (
	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

// ActionableError pairs an error with a suggestion for the user.
//
//	err := NewActionableError("Error fetching SVGs: ...", "Retry later.")
//	output.Error(err)
//	// ✗ Error fetching SVGs: ...
//	//   ▸ Try: Retry later.
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion tells the user what to do next.
	Suggestion string

	// Err is the underlying error, kept for errors.Is.
	Err error
}

// NewActionableError creates an ActionableError.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// FromError builds an ActionableError from a pacsync error, taking the
// suggestion from the error catalog. It returns nil for a nil error.
func FromError(err error) *ActionableError {
	if err == nil {
		return nil
	}
	_, action := errors.Actionable(err)
	return &ActionableError{
		Message:    err.Error(),
		Suggestion: action,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *ActionableError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActionableError) Unwrap() error {
	return e.Err
}
