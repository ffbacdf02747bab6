package config

import (
	"fmt"
	"strings"
)

// PhaseNamePrefix is the required namespace prefix for user-declared phases.
// Synthetic phases created by bulk-command translation are exempt and carry
// the bare command name instead.
const PhaseNamePrefix = "phase:"

// PhaseDependencies lists the phases a phase depends on. Self dependencies
// point at phases within the same project; upstream dependencies point at
// phases run in the project's own dependencies.
type PhaseDependencies struct {
	Self     []string
	Upstream []string
}

// PhaseDefinition is the raw declaration of a phase as authored in the
// configuration document, before registration and validation.
type PhaseDefinition struct {
	Name                   string
	Dependencies           PhaseDependencies
	IsSynthetic            bool
	IgnoreMissingScript    bool
	AllowWarningsOnSuccess bool

	// ShellCommand is only set on synthetic phases translated from bulk
	// commands; regular phases resolve their command from each project's
	// script with the same name as the phase.
	ShellCommand string
}

// Phase is a registered, validated build phase. Instances are created once
// during compilation and never mutated afterwards; AssociatedCommands is
// populated while commands register and is frozen with the rest.
type Phase struct {
	Name                   string
	SelfDependencies       []string
	UpstreamDependencies   []string
	IsSynthetic            bool
	IgnoreMissingScript    bool
	AllowWarningsOnSuccess bool
	ShellCommand           string

	// AssociatedCommands holds every phased command this phase participates
	// in, directly or through another phase's related set.
	AssociatedCommands *CommandSet
}

// NewPhase builds a Phase from its definition, copying the dependency lists
// so the definition's slices are never aliased.
func NewPhase(def *PhaseDefinition) *Phase {
	return &Phase{
		Name:                   def.Name,
		SelfDependencies:       append([]string(nil), def.Dependencies.Self...),
		UpstreamDependencies:   append([]string(nil), def.Dependencies.Upstream...),
		IsSynthetic:            def.IsSynthetic,
		IgnoreMissingScript:    def.IgnoreMissingScript,
		AllowWarningsOnSuccess: def.AllowWarningsOnSuccess,
		ShellCommand:           def.ShellCommand,
		AssociatedCommands:     NewCommandSet(),
	}
}

// LogIdentifier derives a filesystem-safe identifier for the phase's log
// files: every character outside [A-Za-z0-9-_] is replaced with '_', so
// "phase:build" becomes "phase_build".
func (p *Phase) LogIdentifier() string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, p.Name)
}

// DisplayName renders the phase name for terminal output, qualified with the
// identity of the project it runs in.
func (p *Phase) DisplayName(project string) string {
	if project == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, project)
}

// CommandSet is an insertion-ordered set of phased commands, keyed by
// command name.
type CommandSet struct {
	order []*PhasedCommand
	seen  map[string]struct{}
}

// NewCommandSet returns an empty CommandSet.
func NewCommandSet() *CommandSet {
	return &CommandSet{seen: make(map[string]struct{})}
}

// Add inserts the command and reports whether it was not already present.
func (s *CommandSet) Add(c *PhasedCommand) bool {
	if _, ok := s.seen[c.Name]; ok {
		return false
	}
	s.seen[c.Name] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Contains reports whether a command with the given name is in the set.
func (s *CommandSet) Contains(name string) bool {
	_, ok := s.seen[name]
	return ok
}

// Len returns the number of commands in the set.
func (s *CommandSet) Len() int {
	return len(s.order)
}

// Commands returns the commands in insertion order. The returned slice is a
// copy and safe for the caller to retain.
func (s *CommandSet) Commands() []*PhasedCommand {
	return append([]*PhasedCommand(nil), s.order...)
}
