package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Beebek-Sharma/pacsync/internal/domain"
	pserrors "github.com/Beebek-Sharma/pacsync/internal/errors"
)

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "Light", VariantLabel(domain.ThemeLight))
	assert.Equal(t, "Dark", VariantLabel(domain.ThemeDark))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(-1))
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.5 kB", FormatSize(1500))
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		res  domain.SyncResult
		want string
	}{
		{"written", domain.SyncResult{Path: "a.svg", Changed: true, Written: true}, "Wrote a.svg"},
		{"unchanged", domain.SyncResult{Path: "a.svg"}, "No change for a.svg"},
		{"dry run", domain.SyncResult{Path: "a.svg", Changed: true}, "Would write a.svg"},
		{"failed", domain.SyncResult{Path: "a.svg", Changed: true, Err: pserrors.ErrWriteFailed}, "Failed to write a.svg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusLine(tc.res))
		})
	}
}

func TestSummaryLine(t *testing.T) {
	changed := &domain.Report{Results: []domain.SyncResult{{Changed: true}}}
	unchanged := &domain.Report{Results: []domain.SyncResult{{}}}
	assert.Equal(t, "One or more SVGs changed.", SummaryLine(changed))
	assert.Equal(t, "No changes to SVGs.", SummaryLine(unchanged))
}

func TestHasColorSupport(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")
	assert.False(t, HasColorSupport(), "NO_COLOR set to empty still disables color")
}

func TestHasColorSupport_DumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.False(t, HasColorSupport())
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	ae := FromError(pserrors.Wrap(pserrors.ErrWriteFailed, "dark.svg"))
	assert.Contains(t, ae.Error(), "dark.svg")
	assert.Contains(t, ae.Suggestion, "writable")
	assert.True(t, errors.Is(ae, pserrors.ErrWriteFailed))
}

func TestNewActionableError(t *testing.T) {
	ae := NewActionableError("write failed", "Check permissions.")
	assert.Equal(t, "write failed", ae.Error())
	assert.Equal(t, "Check permissions.", ae.Suggestion)
	assert.NoError(t, ae.Unwrap())
}
