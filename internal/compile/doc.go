// Package compile drives configuration compilation: it feeds a
// schema-validated Document through the phase registry, the command registry
// and the parameter binder in strict order and freezes the result into a
// read-only Configuration. Compilation is synchronous, performs no I/O, and
// either succeeds completely or fails with the first configuration error;
// no partial result is ever exposed.
package compile
