package commands

import (
	"github.com/vk/monoforge/internal/config"
)

// TranslateBulk turns a legacy bulk command into a synthetic phase plus a
// synthetic phased command and registers both through the normal phase and
// command paths, so reference validation, cycle detection and related-set
// computation apply to them uniformly.
//
// The synthetic phase carries the command's name. Unless the declaration
// sets ignore_dependency_order, the phase upstream-depends on itself, which
// is what makes the translated command wait for the same phase in each
// project's dependencies.
func (r *Registry) TranslateBulk(def *config.BulkCommandDefinition) error {
	if err := r.checkName(def.Name, config.CommandKindBulk, def.SafeForSimultaneousProcesses); err != nil {
		return err
	}

	phaseDef := &config.PhaseDefinition{
		Name:                   def.Name,
		IsSynthetic:            true,
		IgnoreMissingScript:    def.IgnoreMissingScript,
		AllowWarningsOnSuccess: def.AllowWarningsOnSuccess,
		ShellCommand:           def.ShellCommand,
	}
	if !def.IgnoreDependencyOrder {
		phaseDef.Dependencies.Upstream = []string{def.Name}
	}

	phase, err := r.phases.Register(phaseDef)
	if err != nil {
		return err
	}
	// The document-wide validation pass has already run by the time bulk
	// commands are translated, so re-check just the phase we added.
	if err := r.phases.ValidatePhaseReferences(phase); err != nil {
		return err
	}
	if err := r.phases.DetectCycleFrom(phase.Name); err != nil {
		return err
	}

	cmd := &config.PhasedCommand{
		Name:                         def.Name,
		Summary:                      def.Summary,
		Description:                  def.Description,
		Phases:                       []string{phase.Name},
		IsSynthetic:                  true,
		DisableBuildCache:            true,
		SafeForSimultaneousProcesses: def.SafeForSimultaneousProcesses,
		Parameters:                   config.NewParameterSet(),
	}
	if err := r.registerPhased(cmd); err != nil {
		return err
	}

	r.bulkPhases[def.Name] = phase.Name
	return nil
}

// EnsureBuildAndRebuildDefaults synthesizes the reserved commands that the
// document left undeclared. A missing "build" is translated from the
// built-in bulk default. A missing "rebuild" becomes a synthetic phased
// command that reuses build's phase list and shares build's parameter set by
// reference, so parameters bound to "build" automatically apply to it; an
// explicitly declared "rebuild" keeps its own independent set.
func (r *Registry) EnsureBuildAndRebuildDefaults() error {
	if _, ok := r.commands[config.BuildCommandName]; !ok {
		if err := r.TranslateBulk(config.DefaultBuildCommand()); err != nil {
			return err
		}
	}

	if _, ok := r.commands[config.RebuildCommandName]; ok {
		return nil
	}
	build, ok := r.commands[config.BuildCommandName].(*config.PhasedCommand)
	if !ok {
		// Unreachable: the reserved-name rules forbid a global "build" and
		// bulk translation always produces a phased command.
		return config.SemanticErrorf(r.source, entity(config.BuildCommandName),
			"cannot derive the default rebuild command from a non-phased build command")
	}
	rebuildDef := config.DefaultRebuildCommand()
	rebuild := &config.PhasedCommand{
		Name:                 config.RebuildCommandName,
		Summary:              rebuildDef.Summary,
		Description:          rebuildDef.Description,
		Phases:               build.Phases,
		SkipPhasesForCommand: build.SkipPhasesForCommand,
		IsSynthetic:          true,
		DisableBuildCache:    true,
		Parameters:           build.Parameters,
	}
	return r.registerPhased(rebuild)
}
