package cli

import (
	"github.com/spf13/cobra"

	"github.com/Beebek-Sharma/pacsync/internal/artifact"
	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/fetch"
	"github.com/Beebek-Sharma/pacsync/internal/runner"
	"github.com/Beebek-Sharma/pacsync/internal/signal"
	"github.com/Beebek-Sharma/pacsync/internal/tui"
)

// syncFlags holds flags specific to the sync command.
type syncFlags struct {
	fetchFlags

	lightOutput string
	darkOutput  string
	dryRun      bool
}

// AddSyncCommand adds the sync command to the root command.
func AddSyncCommand(root *cobra.Command, global *GlobalFlags, info BuildInfo) {
	root.AddCommand(newSyncCmd(global, &syncFlags{}, info))
}

func newSyncCmd(global *GlobalFlags, flags *syncFlags, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch both SVG variants and write the ones that changed",
		Long: `Fetch the light and dark contribution graph SVGs, then write each one to
its output path only if the bytes differ from the file already there.

Both variants are fetched before anything is written. If either fetch
fails after all retries, no file is touched and pacsync exits with code 2.

Examples:
  pacsync sync
  pacsync sync --username octocat --dry-run
  pacsync sync --light-output assets/pacman.svg --dark-output assets/pacman-dark.svg
  pacsync sync --retries 5 --retry-delay 5s --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, global, flags, info)
		},
	}

	addFetchFlags(cmd, &flags.fetchFlags)
	cmd.Flags().StringVar(&flags.lightOutput, "light-output", "",
		"path of the light SVG (default \""+constants.DefaultLightOutput+"\")")
	cmd.Flags().StringVar(&flags.darkOutput, "dark-output", "",
		"path of the dark SVG (default \""+constants.DefaultDarkOutput+"\")")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report what would change without writing")

	return cmd
}

func runSync(cmd *cobra.Command, global *GlobalFlags, flags *syncFlags, info BuildInfo) error {
	h := signal.NewHandler(cmd.Context())
	defer h.Stop()
	ctx := h.Context()

	overrides := flags.overrides()
	overrides.Paths.Light = flags.lightOutput
	overrides.Paths.Dark = flags.darkOutput

	cfg, err := loadConfig(ctx, cmd, &flags.fetchFlags, overrides)
	if err != nil {
		return err
	}

	client := fetch.New(cfg, fetch.WithUserAgent(userAgent(info)))
	store := artifact.NewStore(artifact.WithDryRun(flags.dryRun))

	r, err := runner.New(cfg, client, store, runner.WithDryRun(flags.dryRun))
	if err != nil {
		return err
	}

	if flags.dryRun {
		tui.NewOutput(cmd.ErrOrStderr(), global.Output).Info("Dry run: no files will be written.")
	}

	report, runErr := r.Run(ctx)

	out := tui.NewOutput(cmd.OutOrStdout(), global.Output)
	if len(report.Results) > 0 || global.Output == OutputJSON {
		out.Report(report)
	}

	return interrupted(h, runErr)
}
