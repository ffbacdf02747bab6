package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/phases"
)

func newPhaseGraph(t *testing.T) *phases.Registry {
	t.Helper()
	ph := phases.NewRegistry("commands.hcl")
	defs := []*config.PhaseDefinition{
		{Name: "phase:compile"},
		{Name: "phase:build", Dependencies: config.PhaseDependencies{Self: []string{"phase:compile"}}},
		{Name: "phase:test", Dependencies: config.PhaseDependencies{Self: []string{"phase:build"}}},
	}
	for _, def := range defs {
		_, err := ph.Register(def)
		require.NoError(t, err)
	}
	require.NoError(t, ph.ValidateReferences())
	require.NoError(t, ph.DetectCycles())
	return ph
}

func requireKind(t *testing.T, err error, kind config.ErrorKind) *config.Error {
	t.Helper()
	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, kind, cfgErr.Kind)
	return cfgErr
}

func TestRegisterGlobal(t *testing.T) {
	t.Run("registers and preserves order", func(t *testing.T) {
		r := NewRegistry("commands.hcl", newPhaseGraph(t))
		require.NoError(t, r.RegisterGlobal(&config.GlobalCommandDefinition{Name: "deploy", ShellCommand: "deploy.sh"}))
		require.NoError(t, r.RegisterGlobal(&config.GlobalCommandDefinition{Name: "audit"}))

		cmd, ok := r.Command("deploy")
		require.True(t, ok)
		assert.Equal(t, config.CommandKindGlobal, cmd.CommandKind())
		require.NotNil(t, cmd.AssociatedParameters())

		var names []string
		for _, c := range r.Commands() {
			names = append(names, c.CommandName())
		}
		assert.Equal(t, []string{"deploy", "audit"}, names)
	})

	t.Run("rejects duplicate names across kinds", func(t *testing.T) {
		r := NewRegistry("commands.hcl", newPhaseGraph(t))
		require.NoError(t, r.RegisterGlobal(&config.GlobalCommandDefinition{Name: "deploy"}))
		err := r.RegisterPhased(&config.PhasedCommandDefinition{Name: "deploy", Phases: []string{"phase:build"}})
		cfgErr := requireKind(t, err, config.ErrorKindStructural)
		assert.Equal(t, `command "deploy"`, cfgErr.Entity)
	})

	t.Run("reserved names may not be global", func(t *testing.T) {
		r := NewRegistry("commands.hcl", newPhaseGraph(t))
		err := r.RegisterGlobal(&config.GlobalCommandDefinition{Name: "build"})
		cfgErr := requireKind(t, err, config.ErrorKindSemantic)
		assert.Contains(t, cfgErr.Detail, `"bulk" or "phased"`)
	})
}

func TestRegisterPhased(t *testing.T) {
	t.Run("unknown phase reference", func(t *testing.T) {
		r := NewRegistry("commands.hcl", newPhaseGraph(t))
		err := r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:   "retest",
			Phases: []string{"phase:deploy"},
		})
		cfgErr := requireKind(t, err, config.ErrorKindReference)
		assert.Contains(t, cfgErr.Detail, `unknown phase "phase:deploy"`)
	})

	t.Run("unknown skip phase reference", func(t *testing.T) {
		r := NewRegistry("commands.hcl", newPhaseGraph(t))
		err := r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:                 "retest",
			Phases:               []string{"phase:test"},
			SkipPhasesForCommand: []string{"phase:deploy"},
		})
		requireKind(t, err, config.ErrorKindReference)
	})

	t.Run("associates command with the whole related set", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:   "retest",
			Phases: []string{"phase:test"},
		}))

		// phase:test's related set is test, build, compile; the command must
		// land on all three.
		for _, name := range []string{"phase:test", "phase:build", "phase:compile"} {
			p, ok := ph.Phase(name)
			require.True(t, ok)
			assert.True(t, p.AssociatedCommands.Contains("retest"), name)
		}
	})

	t.Run("skip-listed phases propagate associations too", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:                 "quick",
			Phases:               []string{"phase:compile"},
			SkipPhasesForCommand: []string{"phase:test"},
		}))

		p, ok := ph.Phase("phase:test")
		require.True(t, ok)
		assert.True(t, p.AssociatedCommands.Contains("quick"))
	})

	t.Run("reserved names may not be safe for simultaneous processes", func(t *testing.T) {
		r := NewRegistry("commands.hcl", newPhaseGraph(t))
		err := r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:                         "rebuild",
			Phases:                       []string{"phase:build"},
			SafeForSimultaneousProcesses: true,
		})
		cfgErr := requireKind(t, err, config.ErrorKindSemantic)
		assert.Contains(t, cfgErr.Detail, "simultaneous")
	})
}

func TestTranslateBulk(t *testing.T) {
	t.Run("creates a synthetic phase and phased command", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.TranslateBulk(&config.BulkCommandDefinition{
			Name:         "lint",
			ShellCommand: "run-lint",
		}))

		phase, ok := ph.Phase("lint")
		require.True(t, ok)
		assert.True(t, phase.IsSynthetic)
		assert.Equal(t, "run-lint", phase.ShellCommand)
		assert.Equal(t, []string{"lint"}, phase.UpstreamDependencies)
		assert.Empty(t, phase.SelfDependencies)

		cmd, ok := r.Command("lint")
		require.True(t, ok)
		phased, ok := cmd.(*config.PhasedCommand)
		require.True(t, ok)
		assert.True(t, phased.IsSynthetic)
		assert.True(t, phased.DisableBuildCache)
		assert.Equal(t, []string{"lint"}, phased.Phases)

		syn, ok := r.SyntheticPhaseForBulk("lint")
		require.True(t, ok)
		assert.Equal(t, "lint", syn)
	})

	t.Run("ignore_dependency_order drops the upstream self-reference", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.TranslateBulk(&config.BulkCommandDefinition{
			Name:                  "clean",
			IgnoreDependencyOrder: true,
		}))

		phase, ok := ph.Phase("clean")
		require.True(t, ok)
		assert.Empty(t, phase.UpstreamDependencies)
	})

	t.Run("colliding with an existing phase name fails", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.TranslateBulk(&config.BulkCommandDefinition{Name: "lint"}))

		// A second bulk command cannot reuse the name: the command check
		// catches it before phase registration.
		err := r.TranslateBulk(&config.BulkCommandDefinition{Name: "lint"})
		requireKind(t, err, config.ErrorKindStructural)
	})

	t.Run("non-bulk commands get no synthetic phase", func(t *testing.T) {
		r := NewRegistry("commands.hcl", newPhaseGraph(t))
		require.NoError(t, r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:   "retest",
			Phases: []string{"phase:test"},
		}))
		_, ok := r.SyntheticPhaseForBulk("retest")
		assert.False(t, ok)
	})
}

func TestEnsureBuildAndRebuildDefaults(t *testing.T) {
	t.Run("synthesizes both when neither is declared", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.EnsureBuildAndRebuildDefaults())

		build, ok := r.Command("build")
		require.True(t, ok)
		buildCmd, ok := build.(*config.PhasedCommand)
		require.True(t, ok)
		assert.True(t, buildCmd.IsSynthetic)
		assert.Equal(t, []string{"build"}, buildCmd.Phases)

		buildPhase, ok := ph.Phase("build")
		require.True(t, ok)
		assert.True(t, buildPhase.IgnoreMissingScript)

		rebuild, ok := r.Command("rebuild")
		require.True(t, ok)
		rebuildCmd, ok := rebuild.(*config.PhasedCommand)
		require.True(t, ok)
		assert.True(t, rebuildCmd.IsSynthetic)
		assert.True(t, rebuildCmd.DisableBuildCache)
		assert.Equal(t, buildCmd.Phases, rebuildCmd.Phases)
	})

	t.Run("rebuild shares build's parameter set by reference", func(t *testing.T) {
		r := NewRegistry("commands.hcl", newPhaseGraph(t))
		require.NoError(t, r.EnsureBuildAndRebuildDefaults())

		build, _ := r.Command("build")
		rebuild, _ := r.Command("rebuild")
		require.Same(t, build.AssociatedParameters(), rebuild.AssociatedParameters())

		// An addition through build's handle is visible through rebuild's.
		build.AssociatedParameters().Add(&config.FlagParameter{
			BaseParameter: config.BaseParameter{LongName: "--production"},
		})
		assert.True(t, rebuild.AssociatedParameters().Contains("--production"))
	})

	t.Run("declared build is kept and only rebuild is synthesized", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:   "build",
			Phases: []string{"phase:build"},
		}))
		require.NoError(t, r.EnsureBuildAndRebuildDefaults())

		build, _ := r.Command("build")
		buildCmd := build.(*config.PhasedCommand)
		assert.False(t, buildCmd.IsSynthetic)
		assert.Equal(t, []string{"phase:build"}, buildCmd.Phases)

		rebuild, _ := r.Command("rebuild")
		rebuildCmd := rebuild.(*config.PhasedCommand)
		assert.True(t, rebuildCmd.IsSynthetic)
		assert.Equal(t, []string{"phase:build"}, rebuildCmd.Phases)
		assert.Same(t, buildCmd.Parameters, rebuildCmd.Parameters)
	})

	t.Run("declared rebuild keeps its own parameter set", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:   "rebuild",
			Phases: []string{"phase:build"},
		}))
		require.NoError(t, r.EnsureBuildAndRebuildDefaults())

		build, _ := r.Command("build")
		rebuild, _ := r.Command("rebuild")
		assert.NotSame(t, build.AssociatedParameters(), rebuild.AssociatedParameters())
	})

	t.Run("idempotent when both are declared", func(t *testing.T) {
		ph := newPhaseGraph(t)
		r := NewRegistry("commands.hcl", ph)
		require.NoError(t, r.TranslateBulk(&config.BulkCommandDefinition{Name: "build"}))
		require.NoError(t, r.RegisterPhased(&config.PhasedCommandDefinition{
			Name:   "rebuild",
			Phases: []string{"phase:build"},
		}))
		require.NoError(t, r.EnsureBuildAndRebuildDefaults())
		assert.Equal(t, 2, r.Len())
	})
}
