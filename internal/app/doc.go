// Package app wires the application together: it configures the logger,
// drives the HCL loader and the compiler, and reports the compiled
// configuration. The heavy lifting lives in the loader, registry and binder
// packages; app only sequences them.
package app
