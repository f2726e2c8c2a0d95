package tui

import (
	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Beebek-Sharma/pacsync/internal/domain"
)

// labelWidth pads variant labels so paths line up.
const labelWidth = 6

// VariantLabel returns the display label of a theme, e.g. "Light".
func VariantLabel(theme domain.Theme) string {
	return cases.Title(language.English).String(theme.String())
}

// FormatSize renders a byte count for humans, e.g. "13 kB".
func FormatSize(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// StatusLine returns the plain status message for one sync result.
func StatusLine(res domain.SyncResult) string {
	switch {
	case res.Err != nil || res.Error != "":
		return "Failed to write " + res.Path
	case res.Written:
		return "Wrote " + res.Path
	case res.Changed:
		return "Would write " + res.Path
	default:
		return "No change for " + res.Path
	}
}

// SummaryLine returns the closing message of a run.
func SummaryLine(report *domain.Report) string {
	if report.AnyChanged() {
		return "One or more SVGs changed."
	}
	return "No changes to SVGs."
}
