package config

// ParameterKind discriminates the parameter union.
type ParameterKind int

const (
	ParameterKindFlag ParameterKind = iota
	ParameterKindChoice
	ParameterKindString
)

// String returns the kind label used in documents and error messages.
func (k ParameterKind) String() string {
	switch k {
	case ParameterKindFlag:
		return "flag"
	case ParameterKindChoice:
		return "choice"
	case ParameterKindString:
		return "string"
	default:
		return "unknown"
	}
}

// Parameter is a user-facing command-line parameter of any kind. Concrete
// types are FlagParameter, ChoiceParameter and StringParameter; consumers
// dispatch with an exhaustive type switch.
type Parameter interface {
	ParameterLongName() string
	ParameterKind() ParameterKind
	// Base exposes the shared fields. The binder mutates the association
	// lists during compilation; they are frozen afterwards.
	Base() *BaseParameter
}

// BaseParameter carries the fields shared by every parameter kind.
type BaseParameter struct {
	LongName    string
	ShortName   string
	Description string
	Required    bool

	// AssociatedCommands and AssociatedPhases are resolved by the binder:
	// commands that were bulk-translated are redirected from the command
	// list to the phase list, and every entry is validated to exist.
	AssociatedCommands []string
	AssociatedPhases   []string
}

func (b *BaseParameter) ParameterLongName() string { return b.LongName }
func (b *BaseParameter) Base() *BaseParameter      { return b }

// FlagParameter is a boolean switch. Its phase lists let the flag alter the
// phase selection of the command it is passed to.
type FlagParameter struct {
	BaseParameter
	AddPhasesToCommand   []string
	SkipPhasesForCommand []string
}

func (p *FlagParameter) ParameterKind() ParameterKind { return ParameterKindFlag }

// ChoiceAlternative is one admissible value of a choice parameter.
type ChoiceAlternative struct {
	Name        string
	Description string
}

// ChoiceParameter accepts exactly one of a fixed set of alternatives.
type ChoiceParameter struct {
	BaseParameter
	Alternatives []ChoiceAlternative
	DefaultValue string
}

func (p *ChoiceParameter) ParameterKind() ParameterKind { return ParameterKindChoice }

// StringParameter accepts a free-form argument value.
type StringParameter struct {
	BaseParameter
	ArgumentName string
}

func (p *StringParameter) ParameterKind() ParameterKind { return ParameterKindString }

// ParameterSet is an insertion-ordered set of parameters, keyed by long
// name. Commands hold one each; the default "rebuild" command shares the
// identical instance with "build".
type ParameterSet struct {
	order []Parameter
	seen  map[string]struct{}
}

// NewParameterSet returns an empty ParameterSet.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{seen: make(map[string]struct{})}
}

// Add inserts the parameter and reports whether it was not already present.
func (s *ParameterSet) Add(p Parameter) bool {
	name := p.ParameterLongName()
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// Contains reports whether a parameter with the given long name is in the set.
func (s *ParameterSet) Contains(longName string) bool {
	_, ok := s.seen[longName]
	return ok
}

// Len returns the number of parameters in the set.
func (s *ParameterSet) Len() int {
	return len(s.order)
}

// Parameters returns the parameters in insertion order. The returned slice
// is a copy and safe for the caller to retain.
func (s *ParameterSet) Parameters() []Parameter {
	return append([]Parameter(nil), s.order...)
}
