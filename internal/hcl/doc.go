// Package hcl is the HCL-specific configuration loader. It discovers and
// parses document files, merges the built-in defaults for the recognized
// "build" and "rebuild" bulk commands (user-supplied fields win), validates
// the merged document against the schema package, and translates the result
// into the format-agnostic config.Document consumed by the compiler. All
// file I/O for configuration loading lives here; the compiler itself never
// touches the filesystem.
package hcl
