// Package dag provides a small directed-graph type with insertion-ordered
// adjacency, used by the phase registry for dependency validation. It offers
// a reachability walk for computing transitive closures and a depth-first
// cycle search whose visited set is cloned at branch points (out-degree > 1)
// and shared along single-successor chains. The cloning rule is what lets
// diamond-shaped dependency graphs pass while a genuine cycle along any
// single path is still caught.
package dag
