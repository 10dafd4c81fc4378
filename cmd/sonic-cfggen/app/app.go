// Package app wires the sonic-cfggen CLI together: configuration,
// logging, the synthesis pipeline, and the cobra command surface.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/warrior-graph/sonic-cfggen/pkg/logging"
)

// App carries the dependencies of one CLI invocation.
type App struct {
	version string
	commit  string

	config *Config
	logger *zerolog.Logger
}

// New creates an App, loading configuration and initializing logging.
func New(version, commit string) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logging.Configure(config.LogLevel, config.LogFormat)
	logger := logging.Default()

	return &App{
		version: version,
		commit:  commit,
		config:  config,
		logger:  logger,
	}, nil
}

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// ContextWithSignals returns a context cancelled on SIGINT or SIGTERM.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// ExitOnError prints the error to stderr and exits non-zero.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
