// Package cli provides the command-line interface for pacsync.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/domain"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
	"github.com/Beebek-Sharma/pacsync/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates the root command for the pacsync CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "pacsync - keep pacman contribution graph SVGs fresh",
		Long: `pacsync fetches the pacman-style GitHub contribution graph in its light and
dark variants and writes each SVG to disk only when its content changed.

It is meant to run on a schedule (for example in CI) next to committed
image assets. When a fetch fails nothing is written at all.

Exit codes:
  0  success, whether or not anything changed
  1  write failure or other error
  2  fetching an SVG failed after all retries
  3  invalid input`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			flags.Output = v.GetString("output")
			flags.Verbose = v.GetBool("verbose")
			flags.Quiet = v.GetBool("quiet")

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			logger := InitLogger(flags.Verbose, flags.Quiet)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddSyncCommand(cmd, flags, info)
	AddFetchCommand(cmd, info)
	AddConfigCommand(cmd)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// userAgent is the User-Agent sent to the SVG API.
func userAgent(info BuildInfo) string {
	version := info.Version
	if version == "" {
		version = "dev"
	}
	return constants.AppName + "/" + version
}

// Execute runs the root command with the provided context and build info.
// Errors are printed to stderr before being returned; the caller only maps
// them to an exit code.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	return execute(ctx, cmd, flags)
}

func execute(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags) error {
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(cmd.ErrOrStderr(), flags.Output, err)
	}
	return err
}

// reportError prints err with a suggested next step.
// A fetch failure is shown as "Error fetching SVGs: ...".
func reportError(w io.Writer, format string, err error) {
	out := tui.NewOutput(w, format)

	if fe, ok := domain.AsFetchError(err); ok && errors.IsExitCode2Error(err) {
		_, action := errors.Actionable(err)
		ae := tui.NewActionableError("Error fetching SVGs: "+fe.Error(), action)
		ae.Err = err
		out.Error(ae)
		return
	}

	out.Error(tui.FromError(err))
}
