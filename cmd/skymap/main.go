// Package main provides the entry point for the skymap CLI tool.
package main

import (
	"os"

	"github.com/agentstation/skymap/cmd/skymap/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// A run either completes or fails outright; signal handling just lets
	// Ctrl-C abort cleanly.
	ctx, cancel := app.Context()
	defer cancel()

	app.ExitOnError(application.Execute(ctx, os.Args[1:]))
}
