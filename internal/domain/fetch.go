package domain

import (
	stderrors "errors"
	"fmt"

	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

// FailureKind classifies why a fetch attempt did not produce a document.
// Every kind except FailureCanceled is retried identically.
type FailureKind string

// Failure kinds.
const (
	FailureNone      FailureKind = ""
	FailureTransport FailureKind = "transport"
	FailureStatus    FailureKind = "status"
	FailureEmptyBody FailureKind = "empty_body"
	FailureCanceled  FailureKind = "canceled"
)

// Retryable reports whether another attempt may follow a failure of this kind.
func (k FailureKind) Retryable() bool {
	switch k {
	case FailureTransport, FailureStatus, FailureEmptyBody:
		return true
	case FailureNone, FailureCanceled:
		return false
	default:
		return false
	}
}

// AttemptResult is the outcome of a single HTTP attempt.
// Exactly one of Content (on success) or Err (on failure) is meaningful.
type AttemptResult struct {
	// Attempt is the 1-indexed attempt number.
	Attempt int

	// Content is the response body, untrimmed, when the attempt succeeded.
	Content string

	// Failure is FailureNone on success.
	Failure FailureKind

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	// Err describes the failure. It wraps one of the transient sentinels
	// (ErrTransport, ErrUnexpectedStatus, ErrEmptyResponse) or a context error.
	Err error
}

// OK reports whether the attempt produced a usable document.
func (r AttemptResult) OK() bool {
	return r.Failure == FailureNone && r.Err == nil
}

// FetchError is returned when a theme could not be fetched.
// It matches ErrFetchFailed and the error of the last attempt with errors.Is.
// When the retry budget ran out it also matches ErrMaxRetriesExceeded.
type FetchError struct {
	Theme    Theme
	Attempts int
	Last     FailureKind
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Last == FailureCanceled {
		return fmt.Sprintf("fetch %s: interrupted after %d attempt(s): %v", e.Theme, e.Attempts, e.Err)
	}
	return fmt.Sprintf("fetch %s: gave up after %d attempt(s): %v", e.Theme, e.Attempts, e.Err)
}

// Exhausted reports whether the retry budget ran out, as opposed to the
// loop being stopped by cancellation.
func (e *FetchError) Exhausted() bool {
	return e.Last != FailureCanceled
}

// Unwrap exposes the sentinel chain for errors.Is and errors.As.
func (e *FetchError) Unwrap() []error {
	if e.Last == FailureCanceled {
		return []error{errors.ErrFetchFailed, e.Err}
	}
	return []error{errors.ErrFetchFailed, errors.ErrMaxRetriesExceeded, e.Err}
}

// AsFetchError extracts a *FetchError from err's chain.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if stderrors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
