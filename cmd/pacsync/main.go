// Package main provides the entry point for the pacsync CLI.
package main

import (
	"context"
	"os"

	"github.com/Beebek-Sharma/pacsync/internal/cli"
)

// Set via -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "" //nolint:gochecknoglobals // set at build time
	commit  = "" //nolint:gochecknoglobals // set at build time
	date    = "" //nolint:gochecknoglobals // set at build time
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	os.Exit(cli.ExitCodeForError(err))
}
