package cli

import "github.com/spf13/cobra"

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect pacsync configuration",
		Long: `Inspect the configuration pacsync resolves from its layered sources:
PACSYNC_* environment variables, ./.pacsync.yaml, ~/.pacsync/config.yaml and
built-in defaults, highest precedence first.`,
	}

	AddConfigShowCommand(cmd)
	root.AddCommand(cmd)
}
