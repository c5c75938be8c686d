// Package hi is the bot's greeting and liveness check.
package hi

import (
	"context"

	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

type Command struct{}

func New() *Command { return &Command{} }

func (c *Command) Name() string        { return "hi" }
func (c *Command) Description() string { return "Says hi back, proving the bot is alive" }

func (c *Command) Run(ctx context.Context, inv *cmd.Invocation) error {
	mctx, ok := inv.Data.(*command.Context)
	if !ok {
		return nil
	}
	return mctx.Respond(command.Greeting)
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     "hi",
		Description: "Says hi back, proving the bot is alive",
		Template:    "hi",
		Examples:    []string{"`@BGSBot hi`"},
	}
}
