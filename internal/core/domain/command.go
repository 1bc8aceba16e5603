package domain

import "strings"

// CommandSpec is one concrete process invocation built by a runtime adapter.
type CommandSpec struct {
	Argv []string
	// Env holds KEY=VALUE entries. Nil inherits the orchestrator environment.
	Env []string
	Dir string
	// Display is the human readable command shown in start lines.
	Display string
}

// DisplayOrArgv returns Display, falling back to the space-joined argv.
func (c CommandSpec) DisplayOrArgv() string {
	if c.Display != "" {
		return c.Display
	}
	return strings.Join(c.Argv, " ")
}
