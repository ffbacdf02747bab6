package commands

import (
	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/phases"
)

// Registry owns the registered commands. It needs the phase registry both to
// validate phase references and to register the synthetic phases produced by
// bulk-command translation.
type Registry struct {
	source   string
	phases   *phases.Registry
	commands map[string]config.Command
	names    []string

	// bulkPhases maps each bulk-translated command name to its synthetic
	// phase. The parameter binder uses it to redirect command associations
	// that target a legacy bulk command.
	bulkPhases map[string]string
}

// NewRegistry creates an empty command registry backed by the given phase
// registry. Errors it produces name `source` as the offending document.
func NewRegistry(source string, ph *phases.Registry) *Registry {
	return &Registry{
		source:     source,
		phases:     ph,
		commands:   make(map[string]config.Command),
		bulkPhases: make(map[string]string),
	}
}

// Command looks up a registered command by name.
func (r *Registry) Command(name string) (config.Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Commands returns every registered command in registration order.
func (r *Registry) Commands() []config.Command {
	out := make([]config.Command, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.commands[name])
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.names)
}

// SyntheticPhaseForBulk returns the synthetic phase a bulk command was
// translated into, if the named command was declared with the bulk kind.
func (r *Registry) SyntheticPhaseForBulk(name string) (string, bool) {
	p, ok := r.bulkPhases[name]
	return p, ok
}

// RegisterGlobal registers a global command.
func (r *Registry) RegisterGlobal(def *config.GlobalCommandDefinition) error {
	if err := r.checkName(def.Name, config.CommandKindGlobal, def.SafeForSimultaneousProcesses); err != nil {
		return err
	}
	r.insert(&config.GlobalCommand{
		Name:                         def.Name,
		Summary:                      def.Summary,
		Description:                  def.Description,
		ShellCommand:                 def.ShellCommand,
		SafeForSimultaneousProcesses: def.SafeForSimultaneousProcesses,
		Parameters:                   config.NewParameterSet(),
	})
	return nil
}

// RegisterPhased registers a phased command declared in the document.
func (r *Registry) RegisterPhased(def *config.PhasedCommandDefinition) error {
	cmd := &config.PhasedCommand{
		Name:                         def.Name,
		Summary:                      def.Summary,
		Description:                  def.Description,
		Phases:                       append([]string(nil), def.Phases...),
		SkipPhasesForCommand:         append([]string(nil), def.SkipPhasesForCommand...),
		DisableBuildCache:            def.DisableBuildCache,
		WatchForChanges:              def.WatchForChanges,
		SafeForSimultaneousProcesses: def.SafeForSimultaneousProcesses,
		Parameters:                   config.NewParameterSet(),
	}
	return r.registerPhased(cmd)
}

// registerPhased validates and stores an already-built phased command. The
// bulk-translation and default-synthesis paths enter here too, so every
// phased command passes the same checks and association propagation.
func (r *Registry) registerPhased(cmd *config.PhasedCommand) error {
	if err := r.checkName(cmd.Name, config.CommandKindPhased, cmd.SafeForSimultaneousProcesses); err != nil {
		return err
	}
	for _, list := range [][]string{cmd.Phases, cmd.SkipPhasesForCommand} {
		for _, phaseName := range list {
			if _, ok := r.phases.Phase(phaseName); !ok {
				return config.ReferenceErrorf(r.source, entity(cmd.Name),
					"references unknown phase %q", phaseName)
			}
		}
	}

	// Associate the command with every phase in each listed phase's related
	// set, not just the phase itself. Skip-listed phases propagate the same
	// way even though execution excludes them: operators can still target a
	// skipped phase's parameters through this command.
	for _, list := range [][]string{cmd.Phases, cmd.SkipPhasesForCommand} {
		for _, phaseName := range list {
			related, err := r.phases.RelatedPhases(phaseName)
			if err != nil {
				return err
			}
			for _, p := range related {
				p.AssociatedCommands.Add(cmd)
			}
		}
	}

	r.insert(cmd)
	return nil
}

// checkName enforces uniqueness and the reserved-name rules: "build" and
// "rebuild" may only be declared with the bulk or phased kind, and may never
// be marked safe for simultaneous processes.
func (r *Registry) checkName(name string, kind config.CommandKind, safeForSimultaneous bool) error {
	if _, exists := r.commands[name]; exists {
		return config.StructuralErrorf(r.source, entity(name), "command name declared more than once")
	}
	if name != config.BuildCommandName && name != config.RebuildCommandName {
		return nil
	}
	if kind == config.CommandKindGlobal {
		return config.SemanticErrorf(r.source, entity(name),
			`reserved command names may only be declared with the "bulk" or "phased" kind`)
	}
	if safeForSimultaneous {
		return config.SemanticErrorf(r.source, entity(name),
			"reserved command names may not be marked safe for simultaneous processes")
	}
	return nil
}

func (r *Registry) insert(cmd config.Command) {
	r.commands[cmd.CommandName()] = cmd
	r.names = append(r.names, cmd.CommandName())
}

func entity(name string) string {
	return `command "` + name + `"`
}
