package schema

import (
	"strings"

	"github.com/vk/monoforge/internal/config"
)

// Command and parameter kind labels accepted in documents.
const (
	CommandKindBulk   = "bulk"
	CommandKindGlobal = "global"
	CommandKindPhased = "phased"

	ParameterKindFlag   = "flag"
	ParameterKindChoice = "choice"
	ParameterKindString = "string"
)

// ValidateDocument checks a decoded (and default-merged) document against
// the per-kind field rules. A violation is reported as a schema error naming
// `source` and the offending declaration. Compilation must not proceed on a
// document that fails here.
func ValidateDocument(doc *Document, source string) error {
	for _, c := range doc.Commands {
		if err := validateCommand(c, source); err != nil {
			return err
		}
	}
	for _, p := range doc.Parameters {
		if err := validateParameter(p, source); err != nil {
			return err
		}
	}
	return nil
}

// fieldPresence pairs an attribute name with whether the document set it;
// used to report attributes that are not valid for a declaration's kind.
type fieldPresence struct {
	attr    string
	present bool
}

func firstPresent(fields []fieldPresence) (string, bool) {
	for _, f := range fields {
		if f.present {
			return f.attr, true
		}
	}
	return "", false
}

func validateCommand(c *Command, source string) error {
	entity := `command "` + c.Name + `"`
	switch c.Kind {
	case CommandKindGlobal:
		if c.ShellCommand == nil {
			return config.SchemaErrorf(source, entity, "global commands require shell_command")
		}
		if attr, ok := firstPresent([]fieldPresence{
			{"phases", c.Phases != nil},
			{"skip_phases_for_command", c.SkipPhasesForCommand != nil},
			{"ignore_dependency_order", c.IgnoreDependencyOrder != nil},
			{"ignore_missing_script", c.IgnoreMissingScript != nil},
			{"allow_warnings_on_success", c.AllowWarningsOnSuccess != nil},
			{"disable_build_cache", c.DisableBuildCache != nil},
			{"watch_for_changes", c.WatchForChanges != nil},
		}); ok {
			return config.SchemaErrorf(source, entity, "%s is not valid for global commands", attr)
		}
	case CommandKindPhased:
		if len(c.Phases) == 0 {
			return config.SchemaErrorf(source, entity, "phased commands require a non-empty phases list")
		}
		if attr, ok := firstPresent([]fieldPresence{
			{"shell_command", c.ShellCommand != nil},
			{"ignore_dependency_order", c.IgnoreDependencyOrder != nil},
			{"ignore_missing_script", c.IgnoreMissingScript != nil},
			{"allow_warnings_on_success", c.AllowWarningsOnSuccess != nil},
		}); ok {
			return config.SchemaErrorf(source, entity, "%s is not valid for phased commands", attr)
		}
	case CommandKindBulk:
		if attr, ok := firstPresent([]fieldPresence{
			{"phases", c.Phases != nil},
			{"skip_phases_for_command", c.SkipPhasesForCommand != nil},
			{"disable_build_cache", c.DisableBuildCache != nil},
			{"watch_for_changes", c.WatchForChanges != nil},
		}); ok {
			return config.SchemaErrorf(source, entity, "%s is not valid for bulk commands", attr)
		}
	default:
		return config.SchemaErrorf(source, entity,
			"unknown command kind %q (expected %q, %q or %q)", c.Kind,
			CommandKindBulk, CommandKindGlobal, CommandKindPhased)
	}
	return nil
}

func validateParameter(p *Parameter, source string) error {
	entity := `parameter "` + p.LongName + `"`
	if !strings.HasPrefix(p.LongName, "--") || len(p.LongName) == len("--") {
		return config.SchemaErrorf(source, entity, `parameter long names must take the form "--some-name"`)
	}
	switch p.Kind {
	case ParameterKindFlag:
		if attr, ok := firstPresent([]fieldPresence{
			{"alternative", len(p.Alternatives) > 0},
			{"default_value", p.DefaultValue != nil},
			{"argument_name", p.ArgumentName != nil},
		}); ok {
			return config.SchemaErrorf(source, entity, "%s is not valid for flag parameters", attr)
		}
	case ParameterKindChoice:
		if len(p.Alternatives) == 0 {
			return config.SchemaErrorf(source, entity, "choice parameters require at least one alternative block")
		}
		if attr, ok := firstPresent([]fieldPresence{
			{"add_phases_to_command", p.AddPhasesToCommand != nil},
			{"skip_phases_for_command", p.SkipPhasesForCommand != nil},
			{"argument_name", p.ArgumentName != nil},
		}); ok {
			return config.SchemaErrorf(source, entity, "%s is not valid for choice parameters", attr)
		}
	case ParameterKindString:
		if attr, ok := firstPresent([]fieldPresence{
			{"alternative", len(p.Alternatives) > 0},
			{"default_value", p.DefaultValue != nil},
			{"add_phases_to_command", p.AddPhasesToCommand != nil},
			{"skip_phases_for_command", p.SkipPhasesForCommand != nil},
		}); ok {
			return config.SchemaErrorf(source, entity, "%s is not valid for string parameters", attr)
		}
	default:
		return config.SchemaErrorf(source, entity,
			"unknown parameter kind %q (expected %q, %q or %q)", p.Kind,
			ParameterKindFlag, ParameterKindChoice, ParameterKindString)
	}
	return nil
}
