package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhaseCopiesDependencies(t *testing.T) {
	def := &PhaseDefinition{
		Name: "phase:build",
		Dependencies: PhaseDependencies{
			Self:     []string{"phase:compile"},
			Upstream: []string{"phase:build"},
		},
	}
	p := NewPhase(def)

	def.Dependencies.Self[0] = "phase:mutated"
	assert.Equal(t, []string{"phase:compile"}, p.SelfDependencies)
	assert.Equal(t, []string{"phase:build"}, p.UpstreamDependencies)
	require.NotNil(t, p.AssociatedCommands)
	assert.Equal(t, 0, p.AssociatedCommands.Len())
}

func TestPhaseLogIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"phase:build", "phase_build"},
		{"phase:pre-build", "phase_pre-build"},
		{"lint", "lint"},
		{"phase:a/b c", "phase_a_b_c"},
	}
	for _, tt := range tests {
		p := &Phase{Name: tt.name}
		assert.Equal(t, tt.want, p.LogIdentifier(), "name %q", tt.name)
	}
}

func TestPhaseDisplayName(t *testing.T) {
	p := &Phase{Name: "phase:test"}
	assert.Equal(t, "phase:test (acme-app)", p.DisplayName("acme-app"))
	assert.Equal(t, "phase:test", p.DisplayName(""))
}

func TestCommandSet(t *testing.T) {
	s := NewCommandSet()
	a := &PhasedCommand{Name: "a"}
	b := &PhasedCommand{Name: "b"}

	assert.True(t, s.Add(a))
	assert.True(t, s.Add(b))
	assert.False(t, s.Add(a), "duplicate add must be rejected")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.Equal(t, []*PhasedCommand{a, b}, s.Commands())
}
