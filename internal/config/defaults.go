package config

// Built-in definitions for the recognized command names. When a document
// declares "build" or "rebuild" as a bulk command, the loader merges these
// field sets underneath the user's declaration (user-supplied fields win);
// when a document declares neither, the command registry synthesizes both
// from these definitions.

// DefaultBuildCommand returns the built-in bulk definition of "build".
func DefaultBuildCommand() *BulkCommandDefinition {
	return &BulkCommandDefinition{
		Name:                   BuildCommandName,
		Summary:                "Build all projects that haven't been built, or have changed since they were last built.",
		Description:            "Runs each project's build script in dependency order, skipping projects that are already up to date.",
		IgnoreMissingScript:    true,
		AllowWarningsOnSuccess: false,
		IgnoreDependencyOrder:  false,
	}
}

// DefaultRebuildCommand returns the built-in bulk definition of "rebuild".
func DefaultRebuildCommand() *BulkCommandDefinition {
	def := DefaultBuildCommand()
	def.Name = RebuildCommandName
	def.Summary = "Clean and rebuild the entire set of projects."
	def.Description = "Runs each project's build script in dependency order, ignoring any cached build output."
	return def
}
