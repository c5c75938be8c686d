// Package help renders the usage catalogue of every registered command.
package help

import (
	"context"
	"fmt"
	"strings"

	embed "github.com/clinet/discordgo-embed"

	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

const embedColor = 0xFF00FF

type Command struct {
	registry *cmd.Registry
}

func New(registry *cmd.Registry) *Command {
	return &Command{registry: registry}
}

func (c *Command) Name() string        { return "help" }
func (c *Command) Description() string { return "Lists every command and how to use it" }

func (c *Command) Run(ctx context.Context, inv *cmd.Invocation) error {
	mctx, ok := inv.Data.(*command.Context)
	if !ok {
		return nil
	}

	msg := embed.NewEmbed().
		SetTitle("BGSBot Commands").
		SetColor(embedColor)

	for _, registered := range c.registry.GetAll() {
		entry := helpEntry(registered)
		var body strings.Builder
		body.WriteString(entry.Description)
		if entry.Template != "" {
			fmt.Fprintf(&body, "\nUsage: `%s`", entry.Template)
		}
		for _, example := range entry.Examples {
			body.WriteString("\n" + example)
		}
		msg = msg.AddField(entry.Command, body.String())
	}

	return mctx.ReplyEmbed(msg.MessageEmbed)
}

func helpEntry(c cmd.Command) cmd.HelpEntry {
	if hp, ok := cmd.Root(c).(cmd.HelpProvider); ok {
		return hp.Help()
	}
	return cmd.HelpEntry{Command: c.Name(), Description: c.Description()}
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     "help",
		Description: "Lists every command and how to use it",
		Template:    "help",
		Examples:    []string{"`@BGSBot help`"},
	}
}
