package config

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - username must not be empty
//   - endpoint must be an absolute http or https URL
//   - timeout must be positive and at most 10m
//   - retry attempts must be between 1 and 10
//   - retry delay must be between 0 and 1m
//   - both output paths must be set and must differ
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if strings.TrimSpace(cfg.Username) == "" {
		return errors.Wrap(errors.ErrEmptyValue, "username must not be empty")
	}

	if err := validateEndpoint(cfg.Endpoint); err != nil {
		return err
	}

	if cfg.Timeout <= 0 || cfg.Timeout > constants.MaxTimeout {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"timeout must be between 0s (exclusive) and %s, got %s", constants.MaxTimeout, cfg.Timeout)
	}

	if err := validateRetryConfig(&cfg.Retry); err != nil {
		return err
	}

	return validatePathsConfig(&cfg.Paths)
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return errors.Wrap(errors.ErrEmptyValue, "endpoint must not be empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.Wrapf(errors.ErrConfigInvalid, "endpoint %q is not a valid URL: %v", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Wrapf(errors.ErrConfigInvalid, "endpoint %q must use http or https", endpoint)
	}
	if u.Host == "" {
		return errors.Wrapf(errors.ErrConfigInvalid, "endpoint %q has no host", endpoint)
	}
	return nil
}

func validateRetryConfig(cfg *RetryConfig) error {
	if cfg.Attempts < 1 || cfg.Attempts > constants.MaxRetryAttemptsLimit {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"retry.attempts must be between 1 and %d, got %d", constants.MaxRetryAttemptsLimit, cfg.Attempts)
	}

	if cfg.Delay < 0 || cfg.Delay > constants.MaxRetryDelay {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"retry.delay must be between 0s and %s, got %s", constants.MaxRetryDelay, cfg.Delay)
	}
	return nil
}

func validatePathsConfig(cfg *PathsConfig) error {
	if cfg.Light == "" {
		return errors.Wrap(errors.ErrEmptyValue, "paths.light must not be empty")
	}
	if cfg.Dark == "" {
		return errors.Wrap(errors.ErrEmptyValue, "paths.dark must not be empty")
	}
	if filepath.Clean(cfg.Light) == filepath.Clean(cfg.Dark) {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"paths.light and paths.dark must differ, both are %q", cfg.Light)
	}
	return nil
}
