// Package bgschannel manages the channel the BGS reports are posted in.
package bgschannel

import (
	"context"
	"fmt"
	"log"

	embed "github.com/clinet/discordgo-embed"

	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

const embedColor = 0xFF00FF

type Command struct {
	gate  command.Gate
	store command.GuildStore
	verbs map[string]command.VerbFunc
}

func New(gate command.Gate, store command.GuildStore) *Command {
	c := &Command{gate: gate, store: store}
	c.verbs = map[string]command.VerbFunc{
		"set":    c.set,
		"remove": c.remove,
		"show":   c.show,
	}
	return c
}

func (c *Command) Name() string { return "bgschannel" }
func (c *Command) Description() string {
	return "Sets, removes or shows the channel for BGS reports"
}

func (c *Command) Run(ctx context.Context, inv *cmd.Invocation) error {
	mctx, ok := inv.Data.(*command.Context)
	if !ok {
		return nil
	}
	return command.RunVerbs(ctx, mctx, inv.Args, c.verbs)
}

func (c *Command) set(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] bgschannel: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	switch {
	case len(args) > 2:
		return mctx.Respond(command.TooManyParams)
	case len(args) < 2:
		return mctx.Respond(command.NoParams)
	}

	channelID := args[1]
	if !command.GuildHasChannel(mctx.Session, mctx.Message.GuildID, channelID) {
		return mctx.Respond(command.IDNotFound)
	}

	if err := c.store.SetBGSChannel(mctx.Message.GuildID, channelID); err != nil {
		return command.ReplyStoreError(mctx, "bgschannel", err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) remove(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] bgschannel: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) > 1 {
		return mctx.Respond(command.TooManyParams)
	}

	if err := c.store.RemoveBGSChannel(mctx.Message.GuildID); err != nil {
		return command.ReplyStoreError(mctx, "bgschannel", err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) show(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] bgschannel: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) > 1 {
		return mctx.Respond(command.TooManyParams)
	}

	record, exists, err := c.store.Guild(mctx.Message.GuildID)
	if err != nil {
		return command.ReplyStoreError(mctx, "bgschannel", err)
	}
	if !exists {
		return mctx.Reply("Your guild is not set yet")
	}
	if record.BGSChannelID == "" {
		return mctx.Reply("You don't have a bgs channel set up")
	}

	msg := embed.NewEmbed().
		SetTitle("BGS Channel").
		SetColor(embedColor).
		AddField("Channel", fmt.Sprintf("<#%s>", record.BGSChannelID))
	return mctx.ReplyEmbed(msg.MessageEmbed)
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     "bgschannel",
		Description: "Sets, removes or shows the channel for BGS reports",
		Template:    "bgschannel <set|remove|show> <channel id>",
		Examples: []string{
			"`@BGSBot bgschannel set 123456789012345678`",
			"`@BGSBot bgschannel remove`",
			"`@BGSBot bgschannel show`",
		},
	}
}
