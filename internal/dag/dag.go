package dag

import "fmt"

// Graph is a directed graph over string node IDs. Adjacency preserves
// insertion order so traversals and error messages are deterministic. Graph
// is not safe for concurrent mutation; the compiler builds and walks it from
// a single goroutine.
type Graph struct {
	nodes map[string]*node
	order []string
}

type node struct {
	id      string
	succs   []string
	succSet map[string]struct{}
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// AddNode adds a node with the given ID. Adding an existing ID is a no-op.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{id: id, succSet: make(map[string]struct{})}
	g.order = append(g.order, id)
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// AddEdge creates a directed edge from `fromID` to `toID`. Both nodes must
// already exist. A self-edge is accepted here and reported later by the
// cycle search, so the caller gets a cycle error naming the chain rather
// than an edge-insertion failure.
func (g *Graph) AddEdge(fromID, toID string) error {
	from, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}
	if _, ok := g.nodes[toID]; !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}
	if _, ok := from.succSet[toID]; ok {
		return nil
	}
	from.succSet[toID] = struct{}{}
	from.succs = append(from.succs, toID)
	return nil
}

// Successors returns the IDs reachable from `id` in one step, in edge
// insertion order. It returns nil for an unknown node.
func (g *Graph) Successors(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return append([]string(nil), n.succs...)
}

// Reachable returns every node reachable from `id`, including `id` itself,
// in depth-first discovery order. It returns nil for an unknown node.
func (g *Graph) Reachable(id string) []string {
	if _, ok := g.nodes[id]; !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	var visit func(string)
	visit = func(cur string) {
		if _, ok := seen[cur]; ok {
			return
		}
		seen[cur] = struct{}{}
		out = append(out, cur)
		for _, succ := range g.nodes[cur].succs {
			visit(succ)
		}
	}
	visit(id)
	return out
}

// Cycle describes a cycle found by FindCycleFrom. Chain holds the visited
// node IDs in traversal order, ending with the node that closed the cycle.
type Cycle struct {
	Chain []string
}

// FindCycleFrom runs a depth-first search over the edges reachable from
// `start` and returns the first cycle found, or nil.
//
// The visited set is shared along single-successor chains and cloned when a
// node branches. Sharing keeps a linear chain's history in one set so any
// revisit along the path is caught; cloning isolates sibling branches so two
// of them converging on a common node (a diamond) is not mistaken for a
// cycle.
func (g *Graph) FindCycleFrom(start string) *Cycle {
	if _, ok := g.nodes[start]; !ok {
		return nil
	}
	return g.findCycle(start, newVisitSet())
}

func (g *Graph) findCycle(id string, visited *visitSet) *Cycle {
	if visited.has(id) {
		return &Cycle{Chain: append(visited.chain(), id)}
	}
	n := g.nodes[id]
	branching := len(n.succs) > 1
	for _, succ := range n.succs {
		v := visited
		if branching {
			v = visited.clone()
		}
		v.add(id)
		if c := g.findCycle(succ, v); c != nil {
			return c
		}
	}
	return nil
}

// visitSet is an insertion-ordered set of node IDs. Order is kept so a
// detected cycle can report the full traversal chain.
type visitSet struct {
	order []string
	seen  map[string]struct{}
}

func newVisitSet() *visitSet {
	return &visitSet{seen: make(map[string]struct{})}
}

func (v *visitSet) has(id string) bool {
	_, ok := v.seen[id]
	return ok
}

func (v *visitSet) add(id string) {
	if v.has(id) {
		return
	}
	v.seen[id] = struct{}{}
	v.order = append(v.order, id)
}

func (v *visitSet) clone() *visitSet {
	c := &visitSet{
		order: append([]string(nil), v.order...),
		seen:  make(map[string]struct{}, len(v.seen)),
	}
	for id := range v.seen {
		c.seen[id] = struct{}{}
	}
	return c
}

// chain returns a copy of the visited IDs in traversal order.
func (v *visitSet) chain() []string {
	return append([]string(nil), v.order...)
}
