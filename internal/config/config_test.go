package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, constants.DefaultUsername, cfg.Username)
	assert.Equal(t, constants.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, 2*time.Second, cfg.Retry.Delay)
	assert.Equal(t, "pacman-contribution-graph.svg", cfg.Paths.Light)
	assert.Equal(t, "pacman-contribution-graph-dark.svg", cfg.Paths.Dark)

	require.NoError(t, Validate(cfg), "defaults must be valid")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty username",
			mutate:  func(c *Config) { c.Username = "  " },
			wantErr: errors.ErrEmptyValue,
			wantMsg: "username",
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *Config) { c.Endpoint = "" },
			wantErr: errors.ErrEmptyValue,
			wantMsg: "endpoint",
		},
		{
			name:    "endpoint without scheme",
			mutate:  func(c *Config) { c.Endpoint = "example.com/api" },
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "http or https",
		},
		{
			name:    "endpoint with ftp scheme",
			mutate:  func(c *Config) { c.Endpoint = "ftp://example.com/api" },
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "http or https",
		},
		{
			name:    "endpoint without host",
			mutate:  func(c *Config) { c.Endpoint = "https:///api" },
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "no host",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "timeout",
		},
		{
			name:    "timeout too long",
			mutate:  func(c *Config) { c.Timeout = time.Hour },
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "timeout",
		},
		{
			name:    "zero attempts",
			mutate:  func(c *Config) { c.Retry.Attempts = 0 },
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "retry.attempts",
		},
		{
			name:    "too many attempts",
			mutate:  func(c *Config) { c.Retry.Attempts = 11 },
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "retry.attempts",
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.Retry.Delay = -time.Second },
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "retry.delay",
		},
		{
			name:    "empty light output",
			mutate:  func(c *Config) { c.Paths.Light = "" },
			wantErr: errors.ErrEmptyValue,
			wantMsg: "paths.light",
		},
		{
			name:    "empty dark output",
			mutate:  func(c *Config) { c.Paths.Dark = "" },
			wantErr: errors.ErrEmptyValue,
			wantMsg: "paths.dark",
		},
		{
			name: "same path for both variants",
			mutate: func(c *Config) {
				c.Paths.Light = "assets/graph.svg"
				c.Paths.Dark = "assets/../assets/graph.svg"
			},
			wantErr: errors.ErrConfigInvalid,
			wantMsg: "must differ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidate_AcceptsBoundaryValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Retry.Attempts = 1
	cfg.Retry.Delay = 0
	cfg.Timeout = constants.MaxTimeout
	cfg.Endpoint = "http://localhost:8080/api/pacman?v=2"

	require.NoError(t, Validate(cfg))
}

func TestValidate_NilConfig(t *testing.T) {
	require.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
}
