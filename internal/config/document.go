package config

// Document is the raw, schema-validated configuration as produced by a
// format-specific loader, before any registration or binding has happened.
// Source is the human-readable origin (a file path or synthetic description)
// used in every error message derived from this document.
type Document struct {
	Source     string
	Phases     []*PhaseDefinition
	Commands   []CommandDefinition
	Parameters []Parameter
}
