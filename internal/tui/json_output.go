package tui

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/Beebek-Sharma/pacsync/internal/domain"
)

// JSONOutput writes one JSON object per message, for CI and scripts.
type JSONOutput struct {
	encoder *json.Encoder
}

// NewJSONOutput creates a JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{encoder: json.NewEncoder(w)}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error writes {"type":"error","message":...} with the suggestion of an
// ActionableError.
func (o *JSONOutput) Error(err error) {
	jsonErr := jsonError{Type: "error", Message: err.Error()}

	var ae *ActionableError
	if errors.As(err, &ae) {
		jsonErr.Message = ae.Message
		jsonErr.Suggestion = ae.Suggestion
	}

	//nolint:errchkjson // interface method has no error return
	_ = o.encoder.Encode(jsonErr)
}

// Info writes {"type":"info","message":...}.
func (o *JSONOutput) Info(msg string) {
	//nolint:errchkjson // interface method has no error return
	_ = o.encoder.Encode(jsonMessage{Type: "info", Message: msg})
}

// Report writes the whole report as a single object.
func (o *JSONOutput) Report(report *domain.Report) {
	//nolint:errchkjson // interface method has no error return
	_ = o.encoder.Encode(report)
}
