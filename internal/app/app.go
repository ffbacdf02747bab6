package app

import (
	"io"
	"log/slog"

	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/hcl"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *hcl.Loader

	compiled *config.Configuration
}

// NewApp is the constructor for the main application. It returns an App
// with its own isolated logger; nothing is loaded until Run.
func NewApp(outW io.Writer, cfg *Config, loader *hcl.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Configuration returns the compiled configuration. It is nil until Run has
// completed successfully. This is primarily for testing.
func (a *App) Configuration() *config.Configuration {
	return a.compiled
}
