package compile

import (
	"context"
	"fmt"

	"github.com/vk/monoforge/internal/commands"
	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/ctxlog"
	"github.com/vk/monoforge/internal/params"
	"github.com/vk/monoforge/internal/phases"
)

// Compile builds the frozen Configuration from a raw document. The document
// is expected to have passed schema validation already; Compile enforces the
// structural, reference, cycle and semantic rules on top of it.
//
// Construction order is fixed: phases (register, validate references, cycle
// check), then commands (explicit registrations, bulk translation, default
// build/rebuild synthesis), then parameters (normalize, bind). Each stage
// depends on the previous one being complete.
func Compile(ctx context.Context, doc *config.Document) (*config.Configuration, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compile: starting configuration compilation.", "source", doc.Source)

	phaseRegistry := phases.NewRegistry(doc.Source)
	for _, def := range doc.Phases {
		if _, err := phaseRegistry.Register(def); err != nil {
			return nil, err
		}
	}
	if err := phaseRegistry.ValidateReferences(); err != nil {
		return nil, err
	}
	if err := phaseRegistry.DetectCycles(); err != nil {
		return nil, err
	}
	logger.Debug("Compile: phases registered and validated.", "phase_count", phaseRegistry.Len())

	commandRegistry := commands.NewRegistry(doc.Source, phaseRegistry)
	for _, def := range doc.Commands {
		var err error
		switch d := def.(type) {
		case *config.GlobalCommandDefinition:
			err = commandRegistry.RegisterGlobal(d)
		case *config.PhasedCommandDefinition:
			err = commandRegistry.RegisterPhased(d)
		case *config.BulkCommandDefinition:
			err = commandRegistry.TranslateBulk(d)
		default:
			err = fmt.Errorf("unhandled command definition type %T", def)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := commandRegistry.EnsureBuildAndRebuildDefaults(); err != nil {
		return nil, err
	}
	logger.Debug("Compile: commands registered.", "command_count", commandRegistry.Len())

	binder := params.NewBinder(doc.Source, phaseRegistry, commandRegistry)
	bound, err := binder.Bind(doc.Parameters)
	if err != nil {
		return nil, err
	}
	logger.Debug("Compile: parameters bound.", "parameter_count", len(bound))

	cfg := config.NewConfiguration(doc.Source, phaseRegistry.Phases(), commandRegistry.Commands(), bound, tokenContext(phaseRegistry, commandRegistry))
	logger.Debug("Compile: configuration compilation finished.")
	return cfg, nil
}

// tokenContext seeds the shell-expansion token context with facts about the
// compiled configuration. The startup sequence adds workspace facts before
// handing it to the expansion collaborator.
func tokenContext(ph *phases.Registry, cr *commands.Registry) *config.TokenContext {
	tokens := config.NewTokenContext()

	phaseNames := make([]string, 0, ph.Len())
	for _, p := range ph.Phases() {
		phaseNames = append(phaseNames, p.Name)
	}
	tokens.SetStringList("phase_names", phaseNames)

	commandNames := make([]string, 0, cr.Len())
	for _, c := range cr.Commands() {
		commandNames = append(commandNames, c.CommandName())
	}
	tokens.SetStringList("command_names", commandNames)

	return tokens
}
