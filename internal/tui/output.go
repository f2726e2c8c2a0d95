package tui

import (
	"io"

	"github.com/Beebek-Sharma/pacsync/internal/domain"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output is how commands talk to the user.
type Output interface {
	// Error prints an error, with its suggestion when it is an ActionableError.
	Error(err error)
	// Info prints an informational message.
	Info(msg string)
	// Report prints the outcome of a sync run.
	Report(report *domain.Report)
}

// NewOutput returns the Output for format. Anything but "json" is text.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
