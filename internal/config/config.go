// Package config provides configuration management for pacsync with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (PACSYNC_* prefix)
//  3. Project config (./.pacsync.yaml)
//  4. Global config (~/.pacsync/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for pacsync.
// It replaces the fixed constants of a one-off script with an explicit value
// that is passed into the runner.
type Config struct {
	// Username is the GitHub account whose contribution graph is fetched.
	Username string `yaml:"username" json:"username" mapstructure:"username"`

	// Endpoint is the base URL of the SVG API. The username and theme are
	// appended as query parameters.
	// Default: https://github-contribution-stats.vercel.app/api/pacman
	Endpoint string `yaml:"endpoint" json:"endpoint" mapstructure:"endpoint"`

	// Timeout bounds each fetch attempt.
	// Default: 15s
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`

	// Retry controls how failed fetches are retried.
	Retry RetryConfig `yaml:"retry" json:"retry" mapstructure:"retry"`

	// Paths holds the artifact path for each variant.
	Paths PathsConfig `yaml:"paths" json:"paths" mapstructure:"paths"`
}

// RetryConfig controls the fetch retry loop.
// Every failure is retried the same way: a fixed delay, no backoff, no jitter.
type RetryConfig struct {
	// Attempts is the total number of attempts, including the first one.
	// Default: 3, Valid range: 1-10
	Attempts int `yaml:"attempts" json:"attempts" mapstructure:"attempts"`

	// Delay is the pause between attempts.
	// Default: 2s, Valid range: 0-1m
	Delay time.Duration `yaml:"delay" json:"delay" mapstructure:"delay"`
}

// PathsConfig holds the local artifact paths, one per variant.
type PathsConfig struct {
	// Light is the path of the light-theme SVG.
	Light string `yaml:"light" json:"light" mapstructure:"light"`

	// Dark is the path of the dark-theme SVG.
	Dark string `yaml:"dark" json:"dark" mapstructure:"dark"`
}
