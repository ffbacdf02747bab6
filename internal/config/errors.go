package config

import "fmt"

// ErrorKind classifies a configuration failure. None of these are transient:
// every one is a defect in the declarative input and is fatal to startup.
type ErrorKind int

const (
	// ErrorKindStructural covers malformed identifiers and duplicate names.
	ErrorKindStructural ErrorKind = iota
	// ErrorKindReference covers identifiers that resolve to nothing.
	ErrorKindReference
	// ErrorKindCycle covers cycles among phase self-dependencies.
	ErrorKindCycle
	// ErrorKindSemantic covers declarations that are well-formed but
	// contradictory or incomplete.
	ErrorKindSemantic
	// ErrorKindSchema covers documents that fail schema validation.
	ErrorKindSchema
)

// String returns the lowercase label used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindStructural:
		return "structural"
	case ErrorKindReference:
		return "reference"
	case ErrorKindCycle:
		return "cycle"
	case ErrorKindSemantic:
		return "semantic"
	case ErrorKindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// Error is a configuration error. Source names the file or document the
// offending declaration came from, Entity the specific phase, command or
// parameter, and Detail the violated rule.
type Error struct {
	Kind   ErrorKind
	Source string
	Entity string
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("%s: %s error: %s", e.Source, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s error: %s: %s", e.Source, e.Kind, e.Entity, e.Detail)
}

// StructuralErrorf builds a structural Error with a formatted detail message.
func StructuralErrorf(source, entity, format string, args ...any) *Error {
	return &Error{Kind: ErrorKindStructural, Source: source, Entity: entity, Detail: fmt.Sprintf(format, args...)}
}

// ReferenceErrorf builds a reference Error with a formatted detail message.
func ReferenceErrorf(source, entity, format string, args ...any) *Error {
	return &Error{Kind: ErrorKindReference, Source: source, Entity: entity, Detail: fmt.Sprintf(format, args...)}
}

// CycleErrorf builds a cycle Error with a formatted detail message.
func CycleErrorf(source, entity, format string, args ...any) *Error {
	return &Error{Kind: ErrorKindCycle, Source: source, Entity: entity, Detail: fmt.Sprintf(format, args...)}
}

// SemanticErrorf builds a semantic Error with a formatted detail message.
func SemanticErrorf(source, entity, format string, args ...any) *Error {
	return &Error{Kind: ErrorKindSemantic, Source: source, Entity: entity, Detail: fmt.Sprintf(format, args...)}
}

// SchemaErrorf builds a schema Error with a formatted detail message.
func SchemaErrorf(source, entity, format string, args ...any) *Error {
	return &Error{Kind: ErrorKindSchema, Source: source, Entity: entity, Detail: fmt.Sprintf(format, args...)}
}
