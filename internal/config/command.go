package config

// CommandKind discriminates the command union. The bulk kind only exists in
// raw documents: translation turns every bulk declaration into a synthetic
// phase plus a phased command before registration.
type CommandKind int

const (
	CommandKindGlobal CommandKind = iota
	CommandKindPhased
	CommandKindBulk
)

// String returns the kind label used in documents and error messages.
func (k CommandKind) String() string {
	switch k {
	case CommandKindGlobal:
		return "global"
	case CommandKindPhased:
		return "phased"
	case CommandKindBulk:
		return "bulk"
	default:
		return "unknown"
	}
}

// Reserved command names. Both may only be declared with the bulk or phased
// kind and may never be marked safe for simultaneous processes.
const (
	BuildCommandName   = "build"
	RebuildCommandName = "rebuild"
)

// Command is a registered command of any kind. Concrete types are
// GlobalCommand and PhasedCommand; consumers dispatch with an exhaustive
// type switch.
type Command interface {
	CommandName() string
	CommandKind() CommandKind
	// AssociatedParameters returns the live parameter set for this command.
	// The default "rebuild" command shares the identical set with "build",
	// so additions through either handle are visible through both.
	AssociatedParameters() *ParameterSet
}

// GlobalCommand runs once for the whole workspace, outside the phase graph.
type GlobalCommand struct {
	Name                         string
	Summary                      string
	Description                  string
	ShellCommand                 string
	SafeForSimultaneousProcesses bool
	Parameters                   *ParameterSet
}

func (c *GlobalCommand) CommandName() string                 { return c.Name }
func (c *GlobalCommand) CommandKind() CommandKind            { return CommandKindGlobal }
func (c *GlobalCommand) AssociatedParameters() *ParameterSet { return c.Parameters }

// PhasedCommand runs an ordered selection of phases per project.
type PhasedCommand struct {
	Name                         string
	Summary                      string
	Description                  string
	Phases                       []string
	SkipPhasesForCommand         []string
	IsSynthetic                  bool
	DisableBuildCache            bool
	WatchForChanges              bool
	SafeForSimultaneousProcesses bool
	Parameters                   *ParameterSet
}

func (c *PhasedCommand) CommandName() string                 { return c.Name }
func (c *PhasedCommand) CommandKind() CommandKind            { return CommandKindPhased }
func (c *PhasedCommand) AssociatedParameters() *ParameterSet { return c.Parameters }

// CommandDefinition is the raw declaration of a command as authored in the
// configuration document.
type CommandDefinition interface {
	DefinitionName() string
	DefinitionKind() CommandKind
}

// GlobalCommandDefinition declares a global command.
type GlobalCommandDefinition struct {
	Name                         string
	Summary                      string
	Description                  string
	ShellCommand                 string
	SafeForSimultaneousProcesses bool
}

func (d *GlobalCommandDefinition) DefinitionName() string      { return d.Name }
func (d *GlobalCommandDefinition) DefinitionKind() CommandKind { return CommandKindGlobal }

// PhasedCommandDefinition declares a phased command.
type PhasedCommandDefinition struct {
	Name                         string
	Summary                      string
	Description                  string
	Phases                       []string
	SkipPhasesForCommand         []string
	DisableBuildCache            bool
	WatchForChanges              bool
	SafeForSimultaneousProcesses bool
}

func (d *PhasedCommandDefinition) DefinitionName() string      { return d.Name }
func (d *PhasedCommandDefinition) DefinitionKind() CommandKind { return CommandKindPhased }

// BulkCommandDefinition declares a legacy bulk command. Bulk commands are
// never registered directly: the command registry translates each one into a
// synthetic phase plus a synthetic phased command.
type BulkCommandDefinition struct {
	Name                         string
	Summary                      string
	Description                  string
	ShellCommand                 string
	IgnoreDependencyOrder        bool
	IgnoreMissingScript          bool
	AllowWarningsOnSuccess       bool
	SafeForSimultaneousProcesses bool
}

func (d *BulkCommandDefinition) DefinitionName() string      { return d.Name }
func (d *BulkCommandDefinition) DefinitionKind() CommandKind { return CommandKindBulk }
