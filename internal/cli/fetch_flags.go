package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Beebek-Sharma/pacsync/internal/config"
	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
	"github.com/Beebek-Sharma/pacsync/internal/signal"
)

// fetchFlags are the flags shared by every command that talks to the SVG API.
type fetchFlags struct {
	username   string
	endpoint   string
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
}

func addFetchFlags(cmd *cobra.Command, f *fetchFlags) {
	cmd.Flags().StringVarP(&f.username, "username", "u", "",
		fmt.Sprintf("GitHub username (default %q)", constants.DefaultUsername))
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "SVG API endpoint URL")
	cmd.Flags().DurationVar(&f.timeout, "timeout", constants.DefaultTimeout, "timeout for each fetch attempt")
	cmd.Flags().IntVar(&f.retries, "retries", constants.MaxRetryAttempts, "total fetch attempts per variant (1-10)")
	cmd.Flags().DurationVar(&f.retryDelay, "retry-delay", constants.RetryDelay, "fixed delay between attempts")
}

// overrides returns the flag values as a partial Config.
func (f *fetchFlags) overrides() *config.Config {
	return &config.Config{
		Username: f.username,
		Endpoint: f.endpoint,
	}
}

// loadConfig loads the layered configuration and applies the flags the user
// actually set. Numeric flags are applied only when changed so that an
// explicit 0 is validated instead of being mistaken for "not set".
func loadConfig(ctx context.Context, cmd *cobra.Command, f *fetchFlags, overrides *config.Config) (*config.Config, error) {
	cfg, err := config.LoadWithOverrides(ctx, overrides)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if flags.Changed("retries") {
		cfg.Retry.Attempts = f.retries
	}
	if flags.Changed("retry-delay") {
		cfg.Retry.Delay = f.retryDelay
	}

	if err := config.Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

// interrupted marks err as a user interruption when h caught a signal.
func interrupted(h *signal.Handler, err error) error {
	if err == nil || h.Received() == nil {
		return err
	}
	return fmt.Errorf("%w (%s): %w", errors.ErrOperationCanceled, h.Received(), err)
}
