// Package commands implements the command registry: it owns global and
// phased command definitions, translates legacy bulk commands into a
// synthetic phase plus a synthetic phased command, synthesizes the default
// "build" and "rebuild" commands when a document declares neither, and
// enforces the reserved-name rules. Registering a phased command also
// associates it with every phase in each listed phase's related set, which
// is what lets parameter bindings propagate along dependency edges.
package commands
