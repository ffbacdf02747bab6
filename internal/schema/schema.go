// Package schema defines the HCL shape of a configuration document and the
// document-level validation that runs before compilation. The decode structs
// deliberately accept the union of every kind's fields; ValidateDocument
// then enforces per-kind field rules, so a misplaced attribute is reported
// as a schema violation rather than a cryptic decode failure.
package schema

import "github.com/hashicorp/hcl/v2"

// documentSchema is the process-wide schema resource for top-level document
// structure. It is built once at package initialization and never re-parsed.
var documentSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "phase", LabelNames: []string{"name"}},
		{Type: "command", LabelNames: []string{"kind", "name"}},
		{Type: "parameter", LabelNames: []string{"kind", "long_name"}},
	},
}

// DocumentSchema returns the shared top-level body schema.
func DocumentSchema() *hcl.BodySchema {
	return documentSchema
}

// Document is the top-level structure of a configuration document.
type Document struct {
	Phases     []*Phase     `hcl:"phase,block"`
	Commands   []*Command   `hcl:"command,block"`
	Parameters []*Parameter `hcl:"parameter,block"`
}

// Phase is a `phase` block.
type Phase struct {
	Name                   string             `hcl:"name,label"`
	Dependencies           *PhaseDependencies `hcl:"dependencies,block"`
	IgnoreMissingScript    *bool              `hcl:"ignore_missing_script,optional"`
	AllowWarningsOnSuccess *bool              `hcl:"allow_warnings_on_success,optional"`
}

// PhaseDependencies is the `dependencies` block within a phase.
type PhaseDependencies struct {
	Self     []string `hcl:"self,optional"`
	Upstream []string `hcl:"upstream,optional"`
}

// Command is a `command` block. Fields are pointers so the built-in default
// merge and the per-kind validation can distinguish "absent" from a zero
// value.
type Command struct {
	Kind                         string   `hcl:"kind,label"`
	Name                         string   `hcl:"name,label"`
	Summary                      *string  `hcl:"summary,optional"`
	Description                  *string  `hcl:"description,optional"`
	ShellCommand                 *string  `hcl:"shell_command,optional"`
	Phases                       []string `hcl:"phases,optional"`
	SkipPhasesForCommand         []string `hcl:"skip_phases_for_command,optional"`
	IgnoreDependencyOrder        *bool    `hcl:"ignore_dependency_order,optional"`
	IgnoreMissingScript          *bool    `hcl:"ignore_missing_script,optional"`
	AllowWarningsOnSuccess       *bool    `hcl:"allow_warnings_on_success,optional"`
	DisableBuildCache            *bool    `hcl:"disable_build_cache,optional"`
	WatchForChanges              *bool    `hcl:"watch_for_changes,optional"`
	SafeForSimultaneousProcesses *bool    `hcl:"safe_for_simultaneous_processes,optional"`
}

// Parameter is a `parameter` block.
type Parameter struct {
	Kind                 string         `hcl:"kind,label"`
	LongName             string         `hcl:"long_name,label"`
	ShortName            *string        `hcl:"short_name,optional"`
	Description          *string        `hcl:"description,optional"`
	Required             *bool          `hcl:"required,optional"`
	AssociatedCommands   []string       `hcl:"associated_commands,optional"`
	AssociatedPhases     []string       `hcl:"associated_phases,optional"`
	AddPhasesToCommand   []string       `hcl:"add_phases_to_command,optional"`
	SkipPhasesForCommand []string       `hcl:"skip_phases_for_command,optional"`
	Alternatives         []*Alternative `hcl:"alternative,block"`
	DefaultValue         *string        `hcl:"default_value,optional"`
	ArgumentName         *string        `hcl:"argument_name,optional"`
}

// Alternative is an `alternative` block within a choice parameter.
type Alternative struct {
	Name        string  `hcl:"name"`
	Description *string `hcl:"description,optional"`
}
