// Package app provides the application context and dependency management
// for the skymap CLI. It centralizes configuration loading, logging setup,
// and command registration.
package app

import (
	"github.com/rs/zerolog"
)

// App represents the skymap application with its dependencies: resolved
// configuration and a configured logger.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(config)

	return &App{
		version: version,
		commit:  commit,
		date:    date,
		config:  config,
		logger:  &logger,
	}, nil
}

// Version returns the application version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}
