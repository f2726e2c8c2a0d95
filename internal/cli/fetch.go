package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Beebek-Sharma/pacsync/internal/domain"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
	"github.com/Beebek-Sharma/pacsync/internal/fetch"
	"github.com/Beebek-Sharma/pacsync/internal/signal"
)

// fetchCmdFlags holds flags specific to the fetch command.
type fetchCmdFlags struct {
	fetchFlags

	theme string
}

// AddFetchCommand adds the fetch command to the root command.
func AddFetchCommand(root *cobra.Command, info BuildInfo) {
	root.AddCommand(newFetchCmd(&fetchCmdFlags{}, info))
}

func newFetchCmd(flags *fetchCmdFlags, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print one SVG variant to stdout",
		Long: `Fetch a single contribution graph SVG with the same retry policy as sync
and print it to stdout unchanged. Nothing is written to disk.

Examples:
  pacsync fetch --theme dark > graph-dark.svg
  pacsync fetch --username octocat --theme light`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd, flags, info)
		},
	}

	addFetchFlags(cmd, &flags.fetchFlags)
	cmd.Flags().StringVarP(&flags.theme, "theme", "t", string(domain.ThemeLight), "variant to fetch (light|dark)")

	return cmd
}

func runFetch(cmd *cobra.Command, flags *fetchCmdFlags, info BuildInfo) error {
	theme, err := domain.ParseTheme(flags.theme)
	if err != nil {
		return err
	}

	h := signal.NewHandler(cmd.Context())
	defer h.Stop()
	ctx := h.Context()

	cfg, err := loadConfig(ctx, cmd, &flags.fetchFlags, flags.overrides())
	if err != nil {
		return err
	}

	client := fetch.New(cfg, fetch.WithUserAgent(userAgent(info)))
	content, err := client.Fetch(ctx, cfg.Username, theme)
	if err != nil {
		if fe, ok := domain.AsFetchError(err); ok && fe.Exhausted() {
			err = errors.NewExitCode2Error(err)
		}
		return interrupted(h, err)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), content)
	return err
}
