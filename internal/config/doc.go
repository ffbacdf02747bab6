// Package config defines the format-agnostic configuration model for the
// orchestrator: phases, commands, parameters, and the frozen Configuration
// produced by the compile package.
//
// Raw declarations (PhaseDefinition, CommandDefinition and Parameter records
// inside a Document) are produced by a format-specific loader such as the
// HCL one. The compiled entities (Phase, Command, bound Parameter) are the
// single source of truth for the task-execution engine and the CLI
// parameter-registration layer. After compilation completes nothing in this
// model is mutated, with the sole exception of the Configuration's
// additional PATH folders list, which accepts prepends until execution
// begins.
package config
