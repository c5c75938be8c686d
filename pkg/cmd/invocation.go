// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How it is registered and
// dispatched (Discord mention, CLI, HTTP) is defined by adapters that wrap this.
package cmd

import "context"

// Invocation carries the minimal input any command runner can pass: the
// tokenized arguments that followed the command name, plus an opaque payload.
// Adapters set Data to their own context type.
type Invocation struct {
	Args []string
	Data interface{}
}

// Command is the universal contract: identity plus execution. Permissions,
// verbs, and transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// HelpEntry is static help metadata a command may expose.
type HelpEntry struct {
	Command     string
	Description string
	Template    string
	Examples    []string
}

// HelpProvider is implemented by commands that publish usage help.
type HelpProvider interface {
	Help() HelpEntry
}
