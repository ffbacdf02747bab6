package app

import (
	"fmt"
	"strings"

	"github.com/vk/monoforge/internal/config"
)

// printSummary writes a human-readable overview of the compiled
// configuration to the app's output writer.
func (a *App) printSummary(cfg *config.Configuration) {
	fmt.Fprintf(a.outW, "Configuration compiled from %s\n\n", cfg.Source())

	fmt.Fprintln(a.outW, "Phases:")
	for _, p := range cfg.Phases() {
		var notes []string
		if p.IsSynthetic {
			notes = append(notes, "synthetic")
		}
		if len(p.SelfDependencies) > 0 {
			notes = append(notes, fmt.Sprintf("self: %s", strings.Join(p.SelfDependencies, ", ")))
		}
		if len(p.UpstreamDependencies) > 0 {
			notes = append(notes, fmt.Sprintf("upstream: %s", strings.Join(p.UpstreamDependencies, ", ")))
		}
		suffix := ""
		if len(notes) > 0 {
			suffix = " (" + strings.Join(notes, "; ") + ")"
		}
		fmt.Fprintf(a.outW, "  %s%s\n", p.Name, suffix)
	}

	fmt.Fprintln(a.outW, "\nCommands:")
	for _, cmd := range cfg.Commands() {
		switch c := cmd.(type) {
		case *config.PhasedCommand:
			kind := "phased"
			if c.IsSynthetic {
				kind = "phased, synthetic"
			}
			fmt.Fprintf(a.outW, "  %s (%s) phases: %s\n", c.Name, kind, strings.Join(c.Phases, ", "))
		case *config.GlobalCommand:
			fmt.Fprintf(a.outW, "  %s (global)\n", c.Name)
		}
	}

	if params := cfg.Parameters(); len(params) > 0 {
		fmt.Fprintln(a.outW, "\nParameters:")
		for _, p := range params {
			fmt.Fprintf(a.outW, "  %s (%s)\n", p.ParameterLongName(), p.ParameterKind())
		}
	}
}
