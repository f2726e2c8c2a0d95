// Package ctxutil provides context utility functions.
package ctxutil

import (
	"context"
	"errors"
)

// Canceled checks if the context has been canceled or exceeded its deadline.
// Returns the context error if done, nil otherwise.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}

// Interrupted reports whether err was caused by parent ending, as opposed to
// a deadline on a derived, shorter-lived context. A fetch attempt that times
// out on its own deadline is retryable; one whose run context was canceled
// is not.
func Interrupted(parent context.Context, err error) bool {
	if parent.Err() == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
