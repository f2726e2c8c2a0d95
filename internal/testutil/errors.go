// Package testutil provides testing utilities for pacsync.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockNetwork simulates a network failure returned by an HTTP client.
	ErrMockNetwork = errors.New("network error")

	// ErrMockConnectionReset simulates a dropped connection.
	ErrMockConnectionReset = errors.New("connection reset by peer")
)
