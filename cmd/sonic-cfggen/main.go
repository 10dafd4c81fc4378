// Package main provides the entry point for the sonic-cfggen CLI tool.
package main

import (
	"context"
	"os"

	"github.com/warrior-graph/sonic-cfggen/cmd/sonic-cfggen/app"
)

// Version information populated by the build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	application, err := app.New(version, commit)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
