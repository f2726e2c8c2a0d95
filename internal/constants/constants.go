// Package constants provides centralized constant values used throughout pacsync.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// AppName is the binary name, also used as the User-Agent product token.
const AppName = "pacsync"

// Remote API defaults.
const (
	// DefaultEndpoint is the public service that renders pacman-style
	// contribution graphs as SVG.
	DefaultEndpoint = "https://github-contribution-stats.vercel.app/api/pacman"

	// DefaultUsername is the GitHub account whose contribution graph is fetched.
	DefaultUsername = "Beebek-Sharma"

	// QueryUsername is the query parameter carrying the GitHub username.
	QueryUsername = "username"

	// QueryTheme is the query parameter carrying the theme name.
	QueryTheme = "theme"

	// AcceptHeader is sent with every fetch.
	AcceptHeader = "image/svg+xml, text/plain;q=0.9, */*;q=0.8"

	// MaxResponseBytes caps how much of a response body is read.
	MaxResponseBytes = 10 << 20
)

// Output file defaults, relative to the working directory.
const (
	// DefaultLightOutput is where the light variant is written.
	DefaultLightOutput = "pacman-contribution-graph.svg"

	// DefaultDarkOutput is where the dark variant is written.
	DefaultDarkOutput = "pacman-contribution-graph-dark.svg"
)

// HTTP and retry defaults.
const (
	// DefaultTimeout bounds a single fetch attempt.
	DefaultTimeout = 15 * time.Second

	// MaxRetryAttempts is the total number of fetch attempts, including the first.
	MaxRetryAttempts = 3

	// RetryDelay is the fixed pause between fetch attempts. No backoff is applied.
	RetryDelay = 2 * time.Second
)

// Limits enforced by config validation.
const (
	// MaxTimeout is the largest accepted per-attempt timeout.
	MaxTimeout = 10 * time.Minute

	// MaxRetryAttemptsLimit is the largest accepted attempt count.
	MaxRetryAttemptsLimit = 10

	// MaxRetryDelay is the largest accepted delay between attempts.
	MaxRetryDelay = time.Minute
)

// Permissions for files written by pacsync.
const (
	// ArtifactFilePerm is used for newly created SVG files. They are committed
	// to a repository, so they are world-readable.
	ArtifactFilePerm = 0o644

	// ArtifactDirPerm is used when creating missing parent directories.
	ArtifactDirPerm = 0o755
)
