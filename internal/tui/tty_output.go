package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/Beebek-Sharma/pacsync/internal/domain"
)

// TTYOutput renders styled text.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a TTYOutput. It honors NO_COLOR via CheckNoColor.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()

	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
	}
}

// Error prints err in red with a ✗, followed by the suggestion of an
// ActionableError.
func (o *TTYOutput) Error(err error) {
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))

	var ae *ActionableError
	if errors.As(err, &ae) && ae.Suggestion != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+ae.Suggestion))
	}
}

// Info prints msg in blue.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// Report prints one line per variant and the run summary.
//
//	Light  Wrote pacman-contribution-graph.svg (13 kB)
//	Dark   No change for pacman-contribution-graph-dark.svg
//	One or more SVGs changed.
func (o *TTYOutput) Report(report *domain.Report) {
	for _, res := range report.Results {
		label := o.styles.Label.Render(VariantLabel(res.Theme))
		line := StatusLine(res)

		var styled string
		switch {
		case res.Err != nil || res.Error != "":
			styled = o.styles.Error.Render(line)
		case res.Written:
			styled = o.styles.Success.Render(line) + o.styles.Dim.Render(" ("+FormatSize(res.Bytes)+")")
		case res.Changed:
			styled = o.styles.Warning.Render(line)
		default:
			styled = o.styles.Dim.Render(line)
		}
		_, _ = fmt.Fprintln(o.w, label+" "+styled)
	}

	summary := SummaryLine(report)
	if report.DryRun {
		summary += " (dry run, nothing written)"
	}
	_, _ = fmt.Fprintln(o.w, StyleBold.Render(summary))
}
