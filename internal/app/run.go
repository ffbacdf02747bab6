package app

import (
	"context"
	"fmt"

	"github.com/vk/monoforge/internal/compile"
	"github.com/vk/monoforge/internal/ctxlog"
)

// Run loads, compiles and reports the configuration. Any configuration
// error is fatal: the orchestrator must not start executing against an
// invalid document, so the first failure aborts the whole run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	doc, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration document loaded.", "source", doc.Source)

	compiled, err := compile.Compile(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to compile configuration: %w", err)
	}
	a.compiled = compiled

	if a.config.WorkspaceDir != "" {
		compiled.TokenContext().SetString("workspace_dir", a.config.WorkspaceDir)
	}

	a.logger.Info("Configuration compiled successfully.",
		"phases", len(compiled.Phases()),
		"commands", len(compiled.Commands()),
		"parameters", len(compiled.Parameters()),
	)

	a.printSummary(compiled)
	a.logger.Debug("App.Run method finished.")
	return nil
}
