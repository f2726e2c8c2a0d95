package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beebek-Sharma/pacsync/internal/domain"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

func TestRootCmd_Help(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "pacsync")
	assert.Contains(t, output, "sync")
	assert.Contains(t, output, "fetch")
	assert.Contains(t, output, "config")
	assert.Contains(t, output, "--output")
	assert.Contains(t, output, "--verbose")
	assert.Contains(t, output, "--quiet")
	assert.Contains(t, output, "--version")
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		info           BuildInfo
		expectContains []string
	}{
		{
			name:           "full version info",
			info:           BuildInfo{Version: "1.0.0", Commit: "abc1234", Date: "2026-01-01"},
			expectContains: []string{"1.0.0", "abc1234", "2026-01-01"},
		},
		{
			name:           "default dev version",
			info:           BuildInfo{},
			expectContains: []string{"dev", "none", "unknown"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flags := &GlobalFlags{}
			cmd := newRootCmd(flags, tc.info)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"--version"})

			require.NoError(t, cmd.Execute())

			output := buf.String()
			for _, expected := range tc.expectContains {
				assert.Contains(t, output, expected)
			}
		})
	}
}

func TestUserAgent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pacsync/1.2.3", userAgent(BuildInfo{Version: "1.2.3"}))
	assert.Equal(t, "pacsync/dev", userAgent(BuildInfo{}))
}

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, "--output", "xml", "config", "show")
	require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	assert.Contains(t, stderr, "xml")
}

func TestRootCmd_OutputFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("PACSYNC_OUTPUT", "yaml")

	_, _, err := runCLI(t, "config", "show")
	require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
}

func TestReportError_FetchFailure(t *testing.T) {
	t.Parallel()

	fe := &domain.FetchError{Theme: domain.ThemeDark, Attempts: 3, Last: domain.FailureStatus, Err: errors.ErrUnexpectedStatus}
	buf := new(bytes.Buffer)
	reportError(buf, OutputText, errors.NewExitCode2Error(fe))

	assert.Contains(t, buf.String(), "Error fetching SVGs: fetch dark: gave up after 3 attempt(s)")
	assert.Contains(t, buf.String(), "Try:")
}

func TestReportError_JSON(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	reportError(buf, OutputJSON, errors.Wrap(errors.ErrWriteFailed, "dark.svg"))

	assert.Contains(t, buf.String(), `"type":"error"`)
	assert.Contains(t, buf.String(), "writable")
}
