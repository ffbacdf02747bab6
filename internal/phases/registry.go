package phases

import (
	"strings"

	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/dag"
)

// Registry owns the registered phases and their dependency edges.
//
// The intended call sequence is: Register every declared phase, then
// ValidateReferences, then DetectCycles. Synthetic phases created later by
// bulk-command translation re-enter through the same Register path and are
// individually re-checked by the command registry, so the uniform rules
// apply to them too.
type Registry struct {
	source  string
	phases  map[string]*config.Phase
	names   []string
	related map[string][]string
}

// NewRegistry creates an empty phase registry. Errors it produces name
// `source` as the offending document.
func NewRegistry(source string) *Registry {
	return &Registry{
		source:  source,
		phases:  make(map[string]*config.Phase),
		related: make(map[string][]string),
	}
}

// Register validates the phase name and adds the phase. Non-synthetic names
// must carry the namespace prefix and have content after it; every name must
// be unique. The returned Phase is the registered instance.
func (r *Registry) Register(def *config.PhaseDefinition) (*config.Phase, error) {
	if !def.IsSynthetic {
		if !strings.HasPrefix(def.Name, config.PhaseNamePrefix) {
			return nil, config.StructuralErrorf(r.source, entity(def.Name),
				"phase names must begin with the %q prefix", config.PhaseNamePrefix)
		}
		if strings.TrimPrefix(def.Name, config.PhaseNamePrefix) == "" {
			return nil, config.StructuralErrorf(r.source, entity(def.Name),
				"phase names must have content after the %q prefix", config.PhaseNamePrefix)
		}
	}
	if _, exists := r.phases[def.Name]; exists {
		return nil, config.StructuralErrorf(r.source, entity(def.Name), "phase name declared more than once")
	}

	p := config.NewPhase(def)
	r.phases[p.Name] = p
	r.names = append(r.names, p.Name)
	return p, nil
}

// Phase looks up a registered phase by name.
func (r *Registry) Phase(name string) (*config.Phase, bool) {
	p, ok := r.phases[name]
	return p, ok
}

// Phases returns every registered phase in registration order.
func (r *Registry) Phases() []*config.Phase {
	out := make([]*config.Phase, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.phases[name])
	}
	return out
}

// Len returns the number of registered phases.
func (r *Registry) Len() int {
	return len(r.names)
}

// ValidateReferences checks that every self- and upstream-dependency of
// every registered phase resolves to a registered phase.
func (r *Registry) ValidateReferences() error {
	for _, name := range r.names {
		if err := r.ValidatePhaseReferences(r.phases[name]); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePhaseReferences checks a single phase's dependency references. The
// bulk-translation path uses it to re-check each synthetic phase it
// registers after the document-wide pass has already run.
func (r *Registry) ValidatePhaseReferences(p *config.Phase) error {
	for _, dep := range p.SelfDependencies {
		if _, ok := r.phases[dep]; !ok {
			return config.ReferenceErrorf(r.source, entity(p.Name),
				"self dependency %q is not a registered phase", dep)
		}
	}
	for _, dep := range p.UpstreamDependencies {
		if _, ok := r.phases[dep]; !ok {
			return config.ReferenceErrorf(r.source, entity(p.Name),
				"upstream dependency %q is not a registered phase", dep)
		}
	}
	return nil
}

// DetectCycles searches for a cycle among self-dependency edges starting
// from every registered phase. Must run after ValidateReferences.
func (r *Registry) DetectCycles() error {
	g := r.selfGraph()
	for _, name := range r.names {
		if err := r.cycleFrom(g, name); err != nil {
			return err
		}
	}
	return nil
}

// DetectCycleFrom searches for a self-dependency cycle reachable from one
// phase.
func (r *Registry) DetectCycleFrom(name string) error {
	return r.cycleFrom(r.selfGraph(), name)
}

func (r *Registry) cycleFrom(g *dag.Graph, name string) error {
	if c := g.FindCycleFrom(name); c != nil {
		return config.CycleErrorf(r.source, entity(name),
			"cycle among self dependencies: %s", strings.Join(c.Chain, " -> "))
	}
	return nil
}

// selfGraph builds the directed graph of self-dependency edges over the
// current registry contents. Edges to unregistered phases are skipped;
// ValidateReferences reports those.
func (r *Registry) selfGraph() *dag.Graph {
	g := dag.New()
	for _, name := range r.names {
		g.AddNode(name)
	}
	for _, name := range r.names {
		for _, dep := range r.phases[name].SelfDependencies {
			if g.HasNode(dep) {
				// Edge errors are unreachable: both nodes were just added.
				_ = g.AddEdge(name, dep)
			}
		}
	}
	return g
}

// RelatedPhases returns the phase's related phase set: the transitive
// closure over self and upstream dependencies, always including the phase
// itself. The result is memoized per phase and stable across calls.
func (r *Registry) RelatedPhases(name string) ([]*config.Phase, error) {
	if _, ok := r.phases[name]; !ok {
		return nil, config.ReferenceErrorf(r.source, entity(name), "phase is not registered")
	}
	order, ok := r.related[name]
	if !ok {
		seen := make(map[string]struct{})
		var visit func(string)
		visit = func(cur string) {
			if _, done := seen[cur]; done {
				return
			}
			p, registered := r.phases[cur]
			if !registered {
				// Dangling references are reported by ValidateReferences.
				return
			}
			seen[cur] = struct{}{}
			order = append(order, cur)
			for _, dep := range p.SelfDependencies {
				visit(dep)
			}
			for _, dep := range p.UpstreamDependencies {
				visit(dep)
			}
		}
		visit(name)
		r.related[name] = order
	}

	out := make([]*config.Phase, 0, len(order))
	for _, n := range order {
		out = append(out, r.phases[n])
	}
	return out, nil
}

func entity(name string) string {
	return `phase "` + name + `"`
}
