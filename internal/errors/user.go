package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// Order matters: a terminal fetch failure also wraps the cause of its last
// attempt, and the more specific cause is listed first.
//
//nolint:gochecknoglobals // read-only table
var errorInfoEntries = []errorEntry{
	// fetching
	{
		err: ErrEmptyResponse,
		info: ErrorInfo{
			Message: "The SVG API answered with an empty body.",
			Action:  "Check that the username exists on GitHub, then retry later.",
		},
	},
	{
		err: ErrUnexpectedStatus,
		info: ErrorInfo{
			Message: "The SVG API answered with an error status.",
			Action:  "The service may be down or rate limiting. Retry later or point --endpoint at another instance.",
		},
	},
	{
		err: ErrTransport,
		info: ErrorInfo{
			Message: "Could not reach the SVG API.",
			Action:  "Check your network connection or increase --timeout.",
		},
	},
	{
		err: ErrFetchFailed,
		info: ErrorInfo{
			Message: "Error fetching SVGs.",
			Action:  "Retry later. No files were modified.",
		},
	},
	{
		err: ErrMaxRetriesExceeded,
		info: ErrorInfo{
			Message: "Maximum retry attempts reached.",
			Action:  "Increase --retries or --retry-delay.",
		},
	},
	{
		err: ErrUnknownTheme,
		info: ErrorInfo{
			Message: "Unknown theme.",
			Action:  "Use 'light' or 'dark'.",
		},
	},

	// filesystem
	{
		err: ErrWriteFailed,
		info: ErrorInfo{
			Message: "Could not write one or more SVG files.",
			Action:  "Check that the output directory exists and is writable.",
		},
	},

	// configuration & input
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is missing.",
		},
	},
	{
		err: ErrConfigInvalid,
		info: ErrorInfo{
			Message: "The configuration is invalid.",
			Action:  "Run 'pacsync config show' and fix the reported value.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value is empty.",
			Action:  "Provide the value via flag, PACSYNC_* environment variable or config file.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation canceled.",
		},
	},
}

// lookup returns the first entry matching err, or the error text itself.
func lookup(err error) ErrorInfo {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return lookup(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := lookup(err)
	return info.Message, info.Action
}
