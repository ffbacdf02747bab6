package params

import (
	"github.com/vk/monoforge/internal/commands"
	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/phases"
)

// Binder resolves parameter associations against the two registries. Binding
// happens once, after every command has been registered.
type Binder struct {
	source   string
	phases   *phases.Registry
	commands *commands.Registry
}

// NewBinder creates a binder. Errors it produces name `source` as the
// offending document.
func NewBinder(source string, ph *phases.Registry, cr *commands.Registry) *Binder {
	return &Binder{source: source, phases: ph, commands: cr}
}

// Bind normalizes and binds every parameter in declaration order. The
// returned records are independent of the input: caller-supplied slices are
// never aliased.
func (b *Binder) Bind(defs []config.Parameter) ([]config.Parameter, error) {
	out := make([]config.Parameter, 0, len(defs))
	for _, def := range defs {
		p, err := b.bind(def)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (b *Binder) bind(def config.Parameter) (config.Parameter, error) {
	p := normalize(def)
	base := p.Base()

	if err := b.validateKind(p); err != nil {
		return nil, err
	}

	// propagated counts every command parameter set this parameter was added
	// to. The final association check accepts a parameter that reached at
	// least one command this way even if its direct lists ended up empty.
	propagated := 0

	// Resolve command associations. A name that was bulk-translated is
	// redirected: the association moves from the command list to the
	// synthetic phase, and the phase pass below picks it up.
	var kept []string
	for _, name := range base.AssociatedCommands {
		if phaseName, ok := b.commands.SyntheticPhaseForBulk(name); ok {
			base.AssociatedPhases = appendUnique(base.AssociatedPhases, phaseName)
			continue
		}
		cmd, ok := b.commands.Command(name)
		if !ok {
			return nil, config.ReferenceErrorf(b.source, entity(p),
				"associated command %q is not a registered command", name)
		}
		switch c := cmd.(type) {
		case *config.GlobalCommand:
			c.Parameters.Add(p)
		case *config.PhasedCommand:
			c.Parameters.Add(p)
		default:
			return nil, config.SemanticErrorf(b.source, entity(p),
				"associated command %q does not support custom parameters", name)
		}
		propagated++
		kept = append(kept, name)
	}
	base.AssociatedCommands = kept

	// Resolve phase associations, including any added by redirection.
	for _, phaseName := range base.AssociatedPhases {
		n, err := b.propagateViaPhase(p, phaseName)
		if err != nil {
			return nil, err
		}
		propagated += n
	}

	// A flag's add/skip phase lists propagate the same way, but never count
	// as phase associations on the parameter record itself.
	if flag, ok := p.(*config.FlagParameter); ok {
		for _, list := range [][]string{flag.AddPhasesToCommand, flag.SkipPhasesForCommand} {
			for _, phaseName := range list {
				phase, registered := b.phases.Phase(phaseName)
				if !registered {
					return nil, config.ReferenceErrorf(b.source, entity(p),
						"references unknown phase %q", phaseName)
				}
				if phase.IsSynthetic {
					return nil, config.SemanticErrorf(b.source, entity(p),
						"phase %q is synthetic and cannot be added to or skipped for a command", phaseName)
				}
				n, err := b.propagateViaPhase(p, phaseName)
				if err != nil {
					return nil, err
				}
				propagated += n
			}
		}
	}

	if len(base.AssociatedCommands) == 0 && len(base.AssociatedPhases) == 0 && propagated == 0 {
		return nil, config.SemanticErrorf(b.source, entity(p),
			"parameter is not associated with any command or phase")
	}
	return p, nil
}

// validateKind enforces the kind-specific rules before any association work.
func (b *Binder) validateKind(p config.Parameter) error {
	switch t := p.(type) {
	case *config.FlagParameter:
		skip := make(map[string]struct{}, len(t.SkipPhasesForCommand))
		for _, name := range t.SkipPhasesForCommand {
			skip[name] = struct{}{}
		}
		for _, name := range t.AddPhasesToCommand {
			if _, conflict := skip[name]; conflict {
				return config.SemanticErrorf(b.source, entity(p),
					"phase %q appears in both add_phases_to_command and skip_phases_for_command", name)
			}
		}
	case *config.ChoiceParameter:
		if len(t.Alternatives) == 0 {
			return config.SemanticErrorf(b.source, entity(p), "choice parameter declares no alternatives")
		}
		seen := make(map[string]struct{}, len(t.Alternatives))
		for _, alt := range t.Alternatives {
			if _, dup := seen[alt.Name]; dup {
				return config.SemanticErrorf(b.source, entity(p),
					"alternative %q is declared more than once", alt.Name)
			}
			seen[alt.Name] = struct{}{}
		}
		if t.DefaultValue != "" {
			if _, ok := seen[t.DefaultValue]; !ok {
				return config.SemanticErrorf(b.source, entity(p),
					"default value %q does not match any declared alternative", t.DefaultValue)
			}
		}
	case *config.StringParameter:
		// No kind-specific rules.
	default:
		return config.SemanticErrorf(b.source, entity(p), "unknown parameter kind")
	}
	return nil
}

// propagateViaPhase adds the parameter to every command associated with the
// phase (which the command registry already expanded across related sets)
// and returns how many sets it was added to.
func (b *Binder) propagateViaPhase(p config.Parameter, phaseName string) (int, error) {
	phase, ok := b.phases.Phase(phaseName)
	if !ok {
		return 0, config.ReferenceErrorf(b.source, entity(p),
			"associated phase %q is not a registered phase", phaseName)
	}
	n := 0
	for _, cmd := range phase.AssociatedCommands.Commands() {
		cmd.Parameters.Add(p)
		n++
	}
	return n, nil
}

// normalize deep-copies a parameter declaration so the bound record owns its
// association slices outright.
func normalize(def config.Parameter) config.Parameter {
	switch t := def.(type) {
	case *config.FlagParameter:
		c := *t
		c.BaseParameter = copyBase(&t.BaseParameter)
		c.AddPhasesToCommand = append([]string(nil), t.AddPhasesToCommand...)
		c.SkipPhasesForCommand = append([]string(nil), t.SkipPhasesForCommand...)
		return &c
	case *config.ChoiceParameter:
		c := *t
		c.BaseParameter = copyBase(&t.BaseParameter)
		c.Alternatives = append([]config.ChoiceAlternative(nil), t.Alternatives...)
		return &c
	case *config.StringParameter:
		c := *t
		c.BaseParameter = copyBase(&t.BaseParameter)
		return &c
	default:
		return def
	}
}

func copyBase(b *config.BaseParameter) config.BaseParameter {
	c := *b
	c.AssociatedCommands = append([]string(nil), b.AssociatedCommands...)
	c.AssociatedPhases = append([]string(nil), b.AssociatedPhases...)
	return c
}

func appendUnique(list []string, val string) []string {
	for _, v := range list {
		if v == val {
			return list
		}
	}
	return append(list, val)
}

func entity(p config.Parameter) string {
	return `parameter "` + p.ParameterLongName() + `"`
}
