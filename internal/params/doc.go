// Package params implements the parameter binder: it normalizes parameter
// declarations into independent records, validates kind-specific rules,
// resolves command and phase associations in both directions (including
// redirecting associations that target a bulk-translated command to its
// synthetic phase), and propagates each parameter into the associated
// parameter set of every command it reaches. A parameter that ends up
// associated with nothing is a configuration error.
package params
