package hcl

import (
	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/schema"
)

// mergeBuiltinDefaults merges the built-in field sets for the recognized
// command names into any user-declared "build" or "rebuild" bulk command.
// Only fields the document left unset are filled in; user-supplied values
// always win. Other kinds and names are left untouched; the reserved-name
// rules reject a global "build" later with a proper semantic error.
func mergeBuiltinDefaults(doc *schema.Document) {
	for _, c := range doc.Commands {
		if c.Kind != schema.CommandKindBulk {
			continue
		}
		switch c.Name {
		case config.BuildCommandName:
			mergeBulkCommand(c, config.DefaultBuildCommand())
		case config.RebuildCommandName:
			mergeBulkCommand(c, config.DefaultRebuildCommand())
		}
	}
}

func mergeBulkCommand(c *schema.Command, def *config.BulkCommandDefinition) {
	if c.Summary == nil {
		c.Summary = strPtr(def.Summary)
	}
	if c.Description == nil {
		c.Description = strPtr(def.Description)
	}
	if c.ShellCommand == nil && def.ShellCommand != "" {
		c.ShellCommand = strPtr(def.ShellCommand)
	}
	if c.IgnoreDependencyOrder == nil {
		c.IgnoreDependencyOrder = boolPtr(def.IgnoreDependencyOrder)
	}
	if c.IgnoreMissingScript == nil {
		c.IgnoreMissingScript = boolPtr(def.IgnoreMissingScript)
	}
	if c.AllowWarningsOnSuccess == nil {
		c.AllowWarningsOnSuccess = boolPtr(def.AllowWarningsOnSuccess)
	}
	if c.SafeForSimultaneousProcesses == nil {
		c.SafeForSimultaneousProcesses = boolPtr(def.SafeForSimultaneousProcesses)
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
