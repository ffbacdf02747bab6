// Package phases implements the phase registry: it owns every Phase
// definition, validates dependency references, runs branch-aware cycle
// detection over self-dependency edges, and computes each phase's memoized
// related phase set (the reflexive transitive closure over self and upstream
// dependencies). The command registry and the parameter binder both build on
// it.
package phases
