package config

import "github.com/Beebek-Sharma/pacsync/internal/constants"

// DefaultConfig returns a new Config with the built-in default values.
// These defaults are the base layer overridden by config files,
// environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Username: constants.DefaultUsername,
		Endpoint: constants.DefaultEndpoint,
		Timeout:  constants.DefaultTimeout,
		Retry: RetryConfig{
			Attempts: constants.MaxRetryAttempts,
			Delay:    constants.RetryDelay,
		},
		Paths: PathsConfig{
			Light: constants.DefaultLightOutput,
			Dark:  constants.DefaultDarkOutput,
		},
	}
}
