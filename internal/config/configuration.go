package config

// Configuration is the compiled, validated configuration graph. It is built
// once during startup and is safe for concurrent read-only access by the
// task-execution engine's workers. The only permitted mutation is
// PrependAdditionalPathFolder, which callers must stop invoking once
// execution begins.
type Configuration struct {
	source string

	phases     map[string]*Phase
	phaseNames []string

	commands     map[string]Command
	commandNames []string

	parameters []Parameter

	tokens *TokenContext

	pathFolders []string
}

// NewConfiguration assembles a Configuration from compiled entities. The
// phase and command slices define iteration order; names are assumed unique,
// which the registries guarantee.
func NewConfiguration(source string, phases []*Phase, commands []Command, parameters []Parameter, tokens *TokenContext) *Configuration {
	c := &Configuration{
		source:     source,
		phases:     make(map[string]*Phase, len(phases)),
		commands:   make(map[string]Command, len(commands)),
		parameters: append([]Parameter(nil), parameters...),
		tokens:     tokens,
	}
	for _, p := range phases {
		c.phases[p.Name] = p
		c.phaseNames = append(c.phaseNames, p.Name)
	}
	for _, cmd := range commands {
		c.commands[cmd.CommandName()] = cmd
		c.commandNames = append(c.commandNames, cmd.CommandName())
	}
	return c
}

// Source returns the origin description of the document this configuration
// was compiled from.
func (c *Configuration) Source() string {
	return c.source
}

// Phase looks up a phase by name.
func (c *Configuration) Phase(name string) (*Phase, bool) {
	p, ok := c.phases[name]
	return p, ok
}

// Phases returns every phase in registration order.
func (c *Configuration) Phases() []*Phase {
	out := make([]*Phase, 0, len(c.phaseNames))
	for _, name := range c.phaseNames {
		out = append(out, c.phases[name])
	}
	return out
}

// Command looks up a command by name.
func (c *Configuration) Command(name string) (Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

// Commands returns every command in registration order.
func (c *Configuration) Commands() []Command {
	out := make([]Command, 0, len(c.commandNames))
	for _, name := range c.commandNames {
		out = append(out, c.commands[name])
	}
	return out
}

// Parameters returns the bound parameters in declaration order.
func (c *Configuration) Parameters() []Parameter {
	return append([]Parameter(nil), c.parameters...)
}

// TokenContext returns the token-substitution context for shell-command
// expansion.
func (c *Configuration) TokenContext() *TokenContext {
	return c.tokens
}

// PrependAdditionalPathFolder puts a folder at the front of the list of
// additional PATH-like folders handed to the environment-setup component.
// It must only be called before execution begins; the list is never mutated
// afterwards.
func (c *Configuration) PrependAdditionalPathFolder(folder string) {
	c.pathFolders = append([]string{folder}, c.pathFolders...)
}

// AdditionalPathFolders returns a copy of the additional PATH folders in
// order, earliest-prepended last.
func (c *Configuration) AdditionalPathFolders() []string {
	return append([]string(nil), c.pathFolders...)
}
