// Package myguild creates and removes the guild record every other
// configuration command writes into.
package myguild

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

func (c *Command) Name() string        { return "myguild" }
func (c *Command) Description() string { return "Sets, removes or shows your guild" }

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
		log.Printf("[ERR] myguild: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) > 1 {
		return mctx.Respond(command.TooManyParams)
	}

	created, err := c.store.CreateGuild(mctx.Message.GuildID)
	if err != nil {
		return command.ReplyStoreError(mctx, "myguild", err)
	}
	if !created {
		return mctx.Reply("Your guild is already set")
	}
	return mctx.Respond(command.Success)
}

func (c *Command) remove(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] myguild: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) > 1 {
		return mctx.Respond(command.TooManyParams)
	}

	if err := c.store.RemoveGuild(mctx.Message.GuildID); err != nil {
		return command.ReplyStoreError(mctx, "myguild", err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) show(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] myguild: access check: %v", err)
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
		return command.ReplyStoreError(mctx, "myguild", err)
	}
	if !exists {
		return mctx.Reply("Your guild is not set yet")
	}

	msg := embed.NewEmbed().
		SetTitle("My Guild").
		SetColor(embedColor).
		AddField("Guild", fmt.Sprintf("%s (set up %s)", record.GuildID, record.CreatedAt.Format("2006-01-02")))
	return mctx.ReplyEmbed(msg.MessageEmbed)
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     "myguild",
		Description: "Sets, removes or shows your guild",
		Template:    "myguild <set|remove|show>",
		Examples: []string{
			"`@BGSBot myguild set`",
			"`@BGSBot myguild show`",
		},
	}
}
