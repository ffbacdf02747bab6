package hcl

import (
	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/schema"
)

// translateDocument converts the HCL-specific document into the
// format-agnostic model. Kind labels become the tagged unions here, at the
// parse boundary, so every later consumer can dispatch exhaustively on
// concrete types instead of strings. The document must already have passed
// schema validation; unknown kinds cannot reach this point.
func translateDocument(raw *schema.Document, source string) *config.Document {
	doc := &config.Document{Source: source}
	for _, p := range raw.Phases {
		doc.Phases = append(doc.Phases, translatePhase(p))
	}
	for _, c := range raw.Commands {
		doc.Commands = append(doc.Commands, translateCommand(c))
	}
	for _, p := range raw.Parameters {
		doc.Parameters = append(doc.Parameters, translateParameter(p))
	}
	return doc
}

func translatePhase(p *schema.Phase) *config.PhaseDefinition {
	def := &config.PhaseDefinition{
		Name:                   p.Name,
		IgnoreMissingScript:    boolVal(p.IgnoreMissingScript),
		AllowWarningsOnSuccess: boolVal(p.AllowWarningsOnSuccess),
	}
	if p.Dependencies != nil {
		def.Dependencies = config.PhaseDependencies{
			Self:     append([]string(nil), p.Dependencies.Self...),
			Upstream: append([]string(nil), p.Dependencies.Upstream...),
		}
	}
	return def
}

func translateCommand(c *schema.Command) config.CommandDefinition {
	switch c.Kind {
	case schema.CommandKindGlobal:
		return &config.GlobalCommandDefinition{
			Name:                         c.Name,
			Summary:                      strVal(c.Summary),
			Description:                  strVal(c.Description),
			ShellCommand:                 strVal(c.ShellCommand),
			SafeForSimultaneousProcesses: boolVal(c.SafeForSimultaneousProcesses),
		}
	case schema.CommandKindPhased:
		return &config.PhasedCommandDefinition{
			Name:                         c.Name,
			Summary:                      strVal(c.Summary),
			Description:                  strVal(c.Description),
			Phases:                       append([]string(nil), c.Phases...),
			SkipPhasesForCommand:         append([]string(nil), c.SkipPhasesForCommand...),
			DisableBuildCache:            boolVal(c.DisableBuildCache),
			WatchForChanges:              boolVal(c.WatchForChanges),
			SafeForSimultaneousProcesses: boolVal(c.SafeForSimultaneousProcesses),
		}
	default: // schema.CommandKindBulk
		return &config.BulkCommandDefinition{
			Name:                         c.Name,
			Summary:                      strVal(c.Summary),
			Description:                  strVal(c.Description),
			ShellCommand:                 strVal(c.ShellCommand),
			IgnoreDependencyOrder:        boolVal(c.IgnoreDependencyOrder),
			IgnoreMissingScript:          boolVal(c.IgnoreMissingScript),
			AllowWarningsOnSuccess:       boolVal(c.AllowWarningsOnSuccess),
			SafeForSimultaneousProcesses: boolVal(c.SafeForSimultaneousProcesses),
		}
	}
}

func translateParameter(p *schema.Parameter) config.Parameter {
	base := config.BaseParameter{
		LongName:           p.LongName,
		ShortName:          strVal(p.ShortName),
		Description:        strVal(p.Description),
		Required:           boolVal(p.Required),
		AssociatedCommands: append([]string(nil), p.AssociatedCommands...),
		AssociatedPhases:   append([]string(nil), p.AssociatedPhases...),
	}
	switch p.Kind {
	case schema.ParameterKindFlag:
		return &config.FlagParameter{
			BaseParameter:        base,
			AddPhasesToCommand:   append([]string(nil), p.AddPhasesToCommand...),
			SkipPhasesForCommand: append([]string(nil), p.SkipPhasesForCommand...),
		}
	case schema.ParameterKindChoice:
		alts := make([]config.ChoiceAlternative, 0, len(p.Alternatives))
		for _, a := range p.Alternatives {
			alts = append(alts, config.ChoiceAlternative{Name: a.Name, Description: strVal(a.Description)})
		}
		return &config.ChoiceParameter{
			BaseParameter: base,
			Alternatives:  alts,
			DefaultValue:  strVal(p.DefaultValue),
		}
	default: // schema.ParameterKindString
		return &config.StringParameter{
			BaseParameter: base,
			ArgumentName:  strVal(p.ArgumentName),
		}
	}
}

func boolVal(b *bool) bool {
	return b != nil && *b
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
